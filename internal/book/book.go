package book

import (
	"time"

	"github.com/username/contact-book/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultUpcomingWindowDays is the default lookahead for
// UpcomingBirthdays.
const DefaultUpcomingWindowDays = 7

// AddressBook owns the mapping from contact name to Record. The map
// is never handed out; all mutation goes through the methods below so
// the per-record invariants cannot be bypassed.
type AddressBook struct {
	records map[string]*Record
	logger  *zap.Logger
}

// Reminder is one upcoming-birthday result: the contact name and the
// congratulation date (weekend-shifted) formatted as DD.MM.YYYY.
type Reminder struct {
	Name string
	Date string
}

// NewAddressBook creates an empty address book.
func NewAddressBook(logger *zap.Logger) *AddressBook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressBook{
		records: make(map[string]*Record),
		logger:  logger,
	}
}

// AddRecord inserts record keyed by its name. An existing entry with
// the same name is overwritten entirely; nothing is merged.
func (ab *AddressBook) AddRecord(record *Record) {
	if _, exists := ab.records[record.Name()]; exists {
		ab.logger.Debug("Overwriting existing contact", zap.String("name", record.Name()))
	}
	ab.records[record.Name()] = record
}

// Find returns the record for name, if present. Absence is not an
// error at this layer.
func (ab *AddressBook) Find(name string) (*Record, bool) {
	record, ok := ab.records[name]
	return record, ok
}

// Delete removes the entry for name. Deleting an unknown name is a
// no-op.
func (ab *AddressBook) Delete(name string) {
	delete(ab.records, name)
}

// Len returns the number of stored contacts.
func (ab *AddressBook) Len() int {
	return len(ab.records)
}

// Records returns the stored records in map iteration order.
func (ab *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(ab.records))
	for _, record := range ab.records {
		records = append(records, record)
	}
	return records
}

// UpcomingBirthdays reports contacts whose next birthday occurrence,
// shifted off weekends to the following Monday, falls within
// windowDays of today (inclusive on both ends). The window check uses
// the post-shift date: a Saturday birthday inside the window whose
// Monday lands past it is excluded. today is supplied by the caller
// so the computation does not depend on wall-clock time; results are
// in map iteration order.
func (ab *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []Reminder {
	today = dateutil.StartOfDay(today)

	var upcoming []Reminder
	for _, record := range ab.records {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		candidate := nextOccurrence(birthday.Date(), today)
		candidate = dateutil.NextWorkday(candidate)

		days := dateutil.DaysBetween(today, candidate)
		if days < 0 || days > windowDays {
			continue
		}

		upcoming = append(upcoming, Reminder{
			Name: record.Name(),
			Date: candidate.Format(BirthdayFormat),
		})
	}

	ab.logger.Debug("Computed upcoming birthdays",
		zap.Time("today", today),
		zap.Int("window_days", windowDays),
		zap.Int("matches", len(upcoming)))

	return upcoming
}

// nextOccurrence returns the first occurrence of birthday's month and
// day on or after today. time.Date normalizes Feb 29 to Mar 1 in
// non-leap years, so every result is a real calendar date.
func nextOccurrence(birthday, today time.Time) time.Time {
	occurrence := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
	if occurrence.Before(today) {
		occurrence = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
	}
	return occurrence
}

package book

import (
	"regexp"
	"time"
)

// BirthdayFormat is the only accepted birthday layout: zero-padded
// day and month, four-digit year (DD.MM.YYYY).
const BirthdayFormat = "02.01.2006"

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	birthdayPattern = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// PhoneNumber is a validated phone number: exactly 10 ASCII digits,
// no separators, no leading '+'. Immutable once constructed; edits
// replace the value with a newly validated one.
type PhoneNumber string

// NewPhoneNumber validates s and returns it as a PhoneNumber.
func NewPhoneNumber(s string) (PhoneNumber, error) {
	if !phonePattern.MatchString(s) {
		return "", &ValidationError{Field: "phone", Reason: "must be exactly 10 digits"}
	}
	return PhoneNumber(s), nil
}

// String returns the digit string
func (p PhoneNumber) String() string {
	return string(p)
}

// Birthday is a validated calendar date, stored as a date rather than
// the source text so callers can do date arithmetic directly.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s under BirthdayFormat. time.Parse alone accepts
// unpadded day/month, so the shape is checked first; the parse then
// rejects impossible dates like 31.02.2024.
func NewBirthday(s string) (Birthday, error) {
	if !birthdayPattern.MatchString(s) {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: "must match DD.MM.YYYY"}
	}
	date, err := time.Parse(BirthdayFormat, s)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: "not a real calendar date"}
	}
	return Birthday{date: date}, nil
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the birthday back to DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(BirthdayFormat)
}

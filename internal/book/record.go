package book

import (
	"fmt"
	"strings"
)

// Record is a single contact: an immutable name, an ordered list of
// phone numbers (no exact-value duplicates), and an optional birthday.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns the stored phone numbers in insertion order.
func (r *Record) Phones() []PhoneNumber {
	phones := make([]PhoneNumber, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the stored birthday, if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates phone and appends it. Returns ErrDuplicatePhone
// if an equal value is already stored.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhoneNumber(phone)
	if err != nil {
		return err
	}
	if _, ok := r.FindPhone(phone); ok {
		return fmt.Errorf("%w: %s on contact %s", ErrDuplicatePhone, phone, r.name)
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first stored phone equal to phone. Removing
// an absent phone is a no-op, not an error.
func (r *Record) RemovePhone(phone string) {
	for i, p := range r.phones {
		if p.String() == phone {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces oldPhone with newPhone, appending the new value
// at the end of the list. The new value is validated before anything
// is removed: a failed validation leaves the phone list unchanged.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if _, ok := r.FindPhone(oldPhone); !ok {
		return fmt.Errorf("%w: %s on contact %s", ErrPhoneNotFound, oldPhone, r.name)
	}
	p, err := NewPhoneNumber(newPhone)
	if err != nil {
		return err
	}
	r.RemovePhone(oldPhone)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the stored phone equal to phone, if present.
func (r *Record) FindPhone(phone string) (PhoneNumber, bool) {
	for _, p := range r.phones {
		if p.String() == phone {
			return p, true
		}
	}
	return "", false
}

// SetBirthday validates birthday and stores it, overwriting any
// previously set value.
func (r *Record) SetBirthday(birthday string) error {
	b, err := NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders a one-line summary of the contact.
func (r *Record) String() string {
	phones := "no phones"
	if len(r.phones) > 0 {
		values := make([]string, len(r.phones))
		for i, p := range r.phones {
			values[i] = p.String()
		}
		phones = strings.Join(values, ", ")
	}

	bday := "not set"
	if r.birthday != nil {
		bday = r.birthday.String()
	}

	return fmt.Sprintf("%s: %s, birthday: %s", r.name, phones, bday)
}

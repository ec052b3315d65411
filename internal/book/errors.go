package book

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mutation operations. The command layer
// matches these with errors.Is to pick the reply text.
var (
	ErrDuplicatePhone  = errors.New("phone number already present")
	ErrPhoneNotFound   = errors.New("phone number not found")
	ErrContactNotFound = errors.New("contact not found")
)

// ValidationError reports malformed input to a field constructor.
// Matched with errors.As; Field names the offending field ("phone" or
// "birthday") and Reason names the violated rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

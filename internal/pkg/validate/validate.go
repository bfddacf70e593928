// Package validate carries the field-format rules shared by request
// binding and roster import.
package validate

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Digits builds a rule accepting only digit strings of the given
// length range. Empty values pass; pair with validation.Required where
// the field is mandatory.
func Digits(min, max int, message string) validation.RuleFunc {
	re := regexp2.MustCompile(fmt.Sprintf(`^\d{%d,%d}$`, min, max), regexp2.None)

	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			if p, isPtr := value.(*string); isPtr {
				if p == nil {
					return nil
				}
				s = *p
			} else {
				return errors.New("must be a string")
			}
		}
		if s == "" {
			return nil
		}

		matched, err := re.MatchString(s)
		if err != nil {
			return err
		}
		if !matched {
			return errors.New(message)
		}

		return nil
	}
}

var (
	PFNumber    = Digits(4, 12, "PF number must be 4-12 digits")
	PhoneNumber = Digits(7, 15, "phone number must be 7-15 digits")
)

// ErrorMap flattens a validation error into a field→message map for the
// wire format.
func ErrorMap(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := map[string]string{}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}

		return fields
	}

	fields["error"] = err.Error()

	return fields
}

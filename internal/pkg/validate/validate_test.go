package validate

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	rule := Digits(4, 12, "must be 4-12 digits")

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{name: "digits in range", value: "1234"},
		{name: "upper bound", value: "123456789012"},
		{name: "empty passes", value: ""},
		{name: "nil pointer passes", value: (*string)(nil)},
		{name: "letters rejected", value: "12a4", wantErr: true},
		{name: "too short", value: "123", wantErr: true},
		{name: "too long", value: "1234567890123", wantErr: true},
		{name: "non-string rejected", value: 1234, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestErrorMap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, ErrorMap(nil))
	})

	t.Run("validation errors keep field keys", func(t *testing.T) {
		err := validation.Errors{
			"pfNumber":  errors.New("PF number must be 4-12 digits"),
			"firstName": errors.New("cannot be blank"),
		}

		fields := ErrorMap(err)

		assert.Equal(t, "PF number must be 4-12 digits", fields["pfNumber"])
		assert.Equal(t, "cannot be blank", fields["firstName"])
	})

	t.Run("plain error falls back to a single key", func(t *testing.T) {
		fields := ErrorMap(errors.New("boom"))

		assert.Equal(t, map[string]string{"error": "boom"}, fields)
	})
}

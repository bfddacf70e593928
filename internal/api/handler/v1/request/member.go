package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/attendly/seminar-api/internal/pkg/validate"
)

type CreateMemberRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PFNumber    string `json:"pfNumber"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phoneNumber"`
}

func (req *CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.PFNumber, validation.Required, validation.By(validate.PFNumber)),
		validation.Field(&req.Department, validation.Length(0, 100)),
		validation.Field(&req.PhoneNumber, validation.By(validate.PhoneNumber)),
	)
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "2006-01-02"

type CreateSeminarRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	NumberOfDays int    `json:"numberOfDays"`
	StartDate    string `json:"startDate"`
	Status       string `json:"status"`
}

func (req *CreateSeminarRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.NumberOfDays, validation.Required, validation.Min(1)),
		validation.Field(&req.StartDate, validation.Date(dateLayout)),
		validation.Field(&req.Status, validation.Length(0, 50)),
	)
}

// UpdateSeminarRequest is the partial form: absent fields stay nil and
// are neither required nor defaulted.
type UpdateSeminarRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	NumberOfDays *int    `json:"numberOfDays"`
	StartDate    *string `json:"startDate"`
	Status       *string `json:"status"`
}

func (req *UpdateSeminarRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.NumberOfDays, validation.Min(1)),
		validation.Field(&req.StartDate, validation.Date(dateLayout)),
		validation.Field(&req.Status, validation.Length(0, 50)),
	)
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SignInRequest requires the PF number to be present but leaves its
// format to the member lookup, so an unknown or malformed number is a
// not-found rather than a validation failure.
type SignInRequest struct {
	PFNumber  string `json:"pfNumber"`
	DayID     int    `json:"dayId"`
	SeminarID uint   `json:"seminarId"`
}

func (req *SignInRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PFNumber, validation.Required),
		validation.Field(&req.DayID, validation.Required, validation.Min(1)),
		validation.Field(&req.SeminarID, validation.Required),
	)
}

type RegisterMemberRequest struct {
	MemberID uint `json:"memberId"`
}

func (req *RegisterMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MemberID, validation.Required),
	)
}

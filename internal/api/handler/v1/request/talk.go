package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Talk payloads arrive as multipart form fields alongside the optional
// presentation file part.
type CreateTalkRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Day         int    `form:"day" json:"day"`
	Speaker     string `form:"speaker" json:"speaker"`
	TimeSlot    string `form:"timeSlot" json:"timeSlot"`
	SeminarID   uint   `form:"seminarId" json:"seminarId"`
}

func (req *CreateTalkRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Day, validation.Required, validation.Min(1)),
		validation.Field(&req.Speaker, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.SeminarID, validation.Required),
		validation.Field(&req.TimeSlot, validation.Length(0, 50)),
	)
}

type UpdateTalkRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Day         *int    `form:"day" json:"day"`
	Speaker     *string `form:"speaker" json:"speaker"`
	TimeSlot    *string `form:"timeSlot" json:"timeSlot"`
	SeminarID   *uint   `form:"seminarId" json:"seminarId"`
}

func (req *UpdateTalkRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.Day, validation.Min(1)),
		validation.Field(&req.Speaker, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.TimeSlot, validation.Length(0, 50)),
	)
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	MemberID *uint  `json:"memberId"`
	// CommentID references the comment being replied to. The talk id
	// always comes from the URL path, so it has no field here.
	CommentID *uint `json:"commentId"`
}

func (req *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required),
	)
}

package response

import (
	"time"

	"github.com/attendly/seminar-api/internal/domain"
)

type Talk struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Day             int       `json:"day"`
	Speaker         string    `json:"speaker"`
	PresentationURL string    `json:"presentationUrl"`
	TimeSlot        string    `json:"timeSlot"`
	SeminarID       uint      `json:"seminarId"`
	Seminar         *Seminar  `json:"seminar,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewTalk(t domain.Talk) Talk {
	talk := Talk{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Day:             t.Day,
		Speaker:         t.Speaker,
		PresentationURL: t.PresentationURL,
		TimeSlot:        t.TimeSlot,
		SeminarID:       t.SeminarID,
		CreatedAt:       t.CreatedAt,
	}

	if t.Seminar != nil {
		talk.Seminar = newSeminarSummary(*t.Seminar)
	}

	return talk
}

type Comment struct {
	ID        uint           `json:"id"`
	Content   string         `json:"content"`
	TalkID    uint           `json:"talkId"`
	MemberID  *uint          `json:"memberId"`
	CommentID *uint          `json:"commentId"`
	Member    *CommentMember `json:"member,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// CommentMember is the trimmed member embedded in comments.
type CommentMember struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	PFNumber  string `json:"pfNumber"`
}

func NewComment(c domain.Comment) Comment {
	comment := Comment{
		ID:        c.ID,
		Content:   c.Content,
		TalkID:    c.TalkID,
		MemberID:  c.MemberID,
		CommentID: c.ParentID,
		CreatedAt: c.CreatedAt,
	}

	if c.Member != nil {
		comment.Member = &CommentMember{
			ID:        c.Member.ID,
			FirstName: c.Member.FirstName,
			LastName:  c.Member.LastName,
			PFNumber:  c.Member.PFNumber,
		}
	}

	return comment
}

func NewComments(comments []domain.Comment) []Comment {
	out := make([]Comment, len(comments))
	for i, c := range comments {
		out[i] = NewComment(c)
	}

	return out
}

package response

import (
	"time"

	"github.com/attendly/seminar-api/internal/domain"
)

type Seminar struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	NumberOfDays int        `json:"numberOfDays"`
	StartDate    *time.Time `json:"startDate"`
	Status       string     `json:"status"`
	Talks        []Talk     `json:"talks,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewSeminar nests the seminar's talks; each nested talk omits its own
// back-reference to the seminar to avoid cycles.
func NewSeminar(s domain.Seminar) Seminar {
	talks := make([]Talk, len(s.Talks))
	for i, t := range s.Talks {
		talks[i] = NewTalk(t)
	}

	return Seminar{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		NumberOfDays: s.NumberOfDays,
		StartDate:    s.StartDate,
		Status:       s.Status,
		Talks:        talks,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func NewSeminars(seminars []domain.Seminar) []Seminar {
	out := make([]Seminar, len(seminars))
	for i, s := range seminars {
		out[i] = NewSeminar(s)
	}

	return out
}

// newSeminarSummary renders a seminar without its talk list, for
// nesting inside a talk.
func newSeminarSummary(s domain.Seminar) *Seminar {
	return &Seminar{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		NumberOfDays: s.NumberOfDays,
		StartDate:    s.StartDate,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

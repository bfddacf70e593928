package domain

import "time"

type Seminar struct {
	ID           uint
	Title        string
	Description  string
	NumberOfDays int
	StartDate    *time.Time
	Status       string
	Talks        []Talk
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SeminarPatch carries a partial update. Nil fields are left untouched.
type SeminarPatch struct {
	Title        *string
	Description  *string
	NumberOfDays *int
	StartDate    *time.Time
	Status       *string
}

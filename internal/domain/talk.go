package domain

import "time"

type Talk struct {
	ID              uint
	Title           string
	Description     string
	Day             int
	Speaker         string
	PresentationURL string
	TimeSlot        string
	SeminarID       uint
	Seminar         *Seminar
	CreatedAt       time.Time
}

type TalkPatch struct {
	Title           *string
	Description     *string
	Day             *int
	Speaker         *string
	TimeSlot        *string
	SeminarID       *uint
	PresentationURL *string
}

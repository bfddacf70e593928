package domain

import "time"

// Member is a person identified by a unique PF number.
type Member struct {
	ID          uint
	FirstName   string
	LastName    string
	PFNumber    string
	Department  string
	PhoneNumber string
	CreatedAt   time.Time
}

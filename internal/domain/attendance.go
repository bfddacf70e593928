package domain

import "time"

// Attendance records that a member was present on one seminar day.
// At most one row exists per (member, seminar, day).
type Attendance struct {
	ID        uint
	SeminarID uint
	Day       int
	MemberID  uint
	IPAddress string
	Location  string
	Member    *Member
	CreatedAt time.Time
}

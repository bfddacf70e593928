package response

import (
	"time"

	"github.com/attendly/seminar-api/internal/domain"
)

type Attendance struct {
	ID        uint      `json:"id"`
	SeminarID uint      `json:"seminarId"`
	Day       int       `json:"day"`
	MemberID  uint      `json:"memberId"`
	IPAddress string    `json:"ipAddress"`
	Location  string    `json:"location"`
	Member    *Member   `json:"member,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAttendance(a domain.Attendance) Attendance {
	attendance := Attendance{
		ID:        a.ID,
		SeminarID: a.SeminarID,
		Day:       a.Day,
		MemberID:  a.MemberID,
		IPAddress: a.IPAddress,
		Location:  a.Location,
		CreatedAt: a.CreatedAt,
	}

	if a.Member != nil {
		member := NewMember(*a.Member)
		attendance.Member = &member
	}

	return attendance
}

func NewAttendances(attendances []domain.Attendance) []Attendance {
	out := make([]Attendance, len(attendances))
	for i, a := range attendances {
		out[i] = NewAttendance(a)
	}

	return out
}

package response

import (
	"fmt"
	"time"

	"github.com/attendly/seminar-api/internal/domain"
)

type Member struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PFNumber    string    `json:"pfNumber"`
	Department  string    `json:"department"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewMember(m domain.Member) Member {
	return Member{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		PFNumber:    m.PFNumber,
		Department:  m.Department,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

func NewMembers(members []domain.Member) []Member {
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = NewMember(m)
	}

	return out
}

type ImportRowError struct {
	PFNumber string            `json:"pfNumber"`
	Errors   map[string]string `json:"errors"`
}

type ImportReport struct {
	Message string           `json:"message"`
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}

func NewImportReport(r domain.ImportReport) ImportReport {
	rowErrors := make([]ImportRowError, len(r.Errors))
	for i, e := range r.Errors {
		rowErrors[i] = ImportRowError{
			PFNumber: e.PFNumber,
			Errors:   e.Fields,
		}
	}

	return ImportReport{
		Message: newImportMessage(r),
		Created: r.Created,
		Skipped: r.Skipped,
		Errors:  rowErrors,
	}
}

func newImportMessage(r domain.ImportReport) string {
	return fmt.Sprintf("Import completed. Created: %d, Skipped: %d", r.Created, r.Skipped)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/pkg/roster"
	"github.com/attendly/seminar-api/internal/pkg/validate"
	"github.com/attendly/seminar-api/internal/repository"
)

var ErrMemberPFNumberExists = repository.ErrMemberPFNumberExists

type MemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindAll(ctx context.Context) ([]domain.Member, error)
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	FindByPFNumber(ctx context.Context, pfNumber string) (domain.Member, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Member, error)
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return members, nil
}

func (s *MemberService) CreateMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ImportRoster validates and inserts rows independently. A bad row or a
// duplicate PF number is recorded as a skip and the import moves on;
// earlier inserts are never rolled back.
func (s *MemberService) ImportRoster(ctx context.Context, rows []roster.MemberRow) (domain.ImportReport, error) {
	report := domain.ImportReport{Errors: []domain.ImportRowError{}}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.ImportRowError{
				PFNumber: row.PFNumber,
				Fields:   validate.ErrorMap(err),
			})
			continue
		}

		_, err := s.repo.Create(ctx, domain.Member{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			PFNumber:    row.PFNumber,
			Department:  row.Department,
			PhoneNumber: row.PhoneNumber,
		})
		if err != nil {
			// Conflicts are counted but not itemized with field errors.
			if errors.Is(err, repository.ErrMemberPFNumberExists) {
				report.Skipped++
				continue
			}

			return domain.ImportReport{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		report.Created++
	}

	return report, nil
}

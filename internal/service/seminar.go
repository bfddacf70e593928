package service

import (
	"context"
	"fmt"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/repository"
)

var (
	ErrSeminarNotFound = repository.ErrSeminarNotFound
	ErrMemberNotFound  = repository.ErrMemberNotFound
)

type SeminarRepository interface {
	Create(ctx context.Context, seminar domain.Seminar) (domain.Seminar, error)
	FindAll(ctx context.Context) ([]domain.Seminar, error)
	FindByID(ctx context.Context, id uint) (domain.Seminar, error)
	Update(ctx context.Context, id uint, patch domain.SeminarPatch) (domain.Seminar, error)
}

type SeminarService struct {
	repo           SeminarRepository
	memberRepo     MemberRepository
	attendanceRepo AttendanceRepository
}

func NewSeminarService(repo SeminarRepository, memberRepo MemberRepository, attendanceRepo AttendanceRepository) *SeminarService {
	return &SeminarService{
		repo:           repo,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *SeminarService) ListSeminars(ctx context.Context) ([]domain.Seminar, error) {
	seminars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return seminars, nil
}

func (s *SeminarService) GetSeminar(ctx context.Context, id uint) (domain.Seminar, error) {
	seminar, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Seminar{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return seminar, nil
}

func (s *SeminarService) CreateSeminar(ctx context.Context, seminar domain.Seminar) (domain.Seminar, error) {
	if seminar.Status == "" {
		seminar.Status = "draft"
	}

	created, err := s.repo.Create(ctx, seminar)
	if err != nil {
		return domain.Seminar{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SeminarService) UpdateSeminar(ctx context.Context, id uint, patch domain.SeminarPatch) (domain.Seminar, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.Seminar{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Seminar{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// RegisteredMembers derives the member set from existing attendance
// rows; there is no separate registration table.
func (s *SeminarService) RegisteredMembers(ctx context.Context, seminarID uint) ([]domain.Member, error) {
	if _, err := s.repo.FindByID(ctx, seminarID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	ids, err := s.attendanceRepo.DistinctMemberIDs(ctx, seminarID)
	if err != nil {
		return nil, fmt.Errorf("s.attendanceRepo.DistinctMemberIDs -> %w", err)
	}
	if len(ids) == 0 {
		return []domain.Member{}, nil
	}

	members, err := s.memberRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("s.memberRepo.FindByIDs -> %w", err)
	}

	return members, nil
}

// RegisterMember creates one attendance row per seminar day for the
// member, skipping days that already have one. Safe to call twice; the
// second call creates nothing. The storage unique index remains the
// guard against concurrent registrations racing past the pre-checks.
func (s *SeminarService) RegisterMember(ctx context.Context, seminarID, memberID uint) error {
	seminar, err := s.repo.FindByID(ctx, seminarID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("s.memberRepo.FindByID -> %w", err)
	}

	var missing []domain.Attendance
	for day := 1; day <= seminar.NumberOfDays; day++ {
		exists, err := s.attendanceRepo.Exists(ctx, member.ID, seminar.ID, day)
		if err != nil {
			return fmt.Errorf("s.attendanceRepo.Exists -> %w", err)
		}
		if !exists {
			missing = append(missing, domain.Attendance{
				SeminarID: seminar.ID,
				Day:       day,
				MemberID:  member.ID,
			})
		}
	}

	if err := s.attendanceRepo.CreateBatch(ctx, missing); err != nil {
		return fmt.Errorf("s.attendanceRepo.CreateBatch -> %w", err)
	}

	return nil
}

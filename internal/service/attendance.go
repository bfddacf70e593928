package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/pkg/roster"
	"github.com/attendly/seminar-api/internal/repository"
)

var (
	ErrAttendanceExists    = repository.ErrAttendanceExists
	ErrNoRegisteredMembers = errors.New("no registered members found")
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance domain.Attendance) (domain.Attendance, error)
	CreateBatch(ctx context.Context, attendances []domain.Attendance) error
	Exists(ctx context.Context, memberID, seminarID uint, day int) (bool, error)
	Find(ctx context.Context, seminarID uint, day int) ([]domain.Attendance, error)
	FindBySeminarID(ctx context.Context, seminarID uint) ([]domain.Attendance, error)
	DistinctMemberIDs(ctx context.Context, seminarID uint) ([]uint, error)
}

type AttendanceService struct {
	repo        AttendanceRepository
	seminarRepo SeminarRepository
	memberRepo  MemberRepository
}

func NewAttendanceService(repo AttendanceRepository, seminarRepo SeminarRepository, memberRepo MemberRepository) *AttendanceService {
	return &AttendanceService{
		repo:        repo,
		seminarRepo: seminarRepo,
		memberRepo:  memberRepo,
	}
}

func (s *AttendanceService) ListAttendance(ctx context.Context, seminarID uint, day int) ([]domain.Attendance, error) {
	attendances, err := s.repo.Find(ctx, seminarID, day)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return attendances, nil
}

// SignIn records one member's presence for a seminar day. The existence
// pre-check gives the friendlier error; the storage unique index is the
// invariant guard when two sign-ins race, and both paths surface
// ErrAttendanceExists.
func (s *AttendanceService) SignIn(ctx context.Context, pfNumber string, seminarID uint, day int, ipAddress, location string) (domain.Attendance, error) {
	member, err := s.memberRepo.FindByPFNumber(ctx, pfNumber)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.memberRepo.FindByPFNumber -> %w", err)
	}

	if _, err = s.seminarRepo.FindByID(ctx, seminarID); err != nil {
		return domain.Attendance{}, fmt.Errorf("s.seminarRepo.FindByID -> %w", err)
	}

	exists, err := s.repo.Exists(ctx, member.ID, seminarID, day)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if exists {
		return domain.Attendance{}, ErrAttendanceExists
	}

	created, err := s.repo.Create(ctx, domain.Attendance{
		SeminarID: seminarID,
		Day:       day,
		MemberID:  member.ID,
		IPAddress: ipAddress,
		Location:  location,
	})
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	created.Member = &member

	return created, nil
}

// Export builds the attendance matrix workbook for a seminar. A seminar
// with no registered members is a not-found, never an empty sheet.
func (s *AttendanceService) Export(ctx context.Context, seminarID uint) (*excelize.File, domain.Seminar, error) {
	seminar, err := s.seminarRepo.FindByID(ctx, seminarID)
	if err != nil {
		return nil, domain.Seminar{}, fmt.Errorf("s.seminarRepo.FindByID -> %w", err)
	}

	ids, err := s.repo.DistinctMemberIDs(ctx, seminarID)
	if err != nil {
		return nil, domain.Seminar{}, fmt.Errorf("s.repo.DistinctMemberIDs -> %w", err)
	}
	if len(ids) == 0 {
		return nil, domain.Seminar{}, ErrNoRegisteredMembers
	}

	members, err := s.memberRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, domain.Seminar{}, fmt.Errorf("s.memberRepo.FindByIDs -> %w", err)
	}

	attendances, err := s.repo.FindBySeminarID(ctx, seminarID)
	if err != nil {
		return nil, domain.Seminar{}, fmt.Errorf("s.repo.FindBySeminarID -> %w", err)
	}

	workbook, err := roster.AttendanceWorkbook(seminar.NumberOfDays, members, attendances)
	if err != nil {
		return nil, domain.Seminar{}, fmt.Errorf("roster.AttendanceWorkbook -> %w", err)
	}

	return workbook, seminar, nil
}

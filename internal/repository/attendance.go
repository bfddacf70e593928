package repository

import (
	"context"
	"fmt"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/repository/dao"
)

var ErrAttendanceExists = dao.ErrAttendanceExists

type AttendanceDAO interface {
	Insert(ctx context.Context, attendance dao.Attendance) (dao.Attendance, error)
	InsertBatch(ctx context.Context, attendances []dao.Attendance) error
	Exists(ctx context.Context, memberID, seminarID uint, day int) (bool, error)
	Find(ctx context.Context, seminarID uint, day int) ([]dao.Attendance, error)
	FindBySeminarID(ctx context.Context, seminarID uint) ([]dao.Attendance, error)
	DistinctMemberIDs(ctx context.Context, seminarID uint) ([]uint, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance domain.Attendance) (domain.Attendance, error) {
	created, err := r.dao.Insert(ctx, dao.Attendance{
		SeminarID: attendance.SeminarID,
		Day:       attendance.Day,
		MemberID:  attendance.MemberID,
		IPAddress: attendance.IPAddress,
		Location:  attendance.Location,
	})
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// CreateBatch inserts the given day rows in one commit.
func (r *AttendanceRepository) CreateBatch(ctx context.Context, attendances []domain.Attendance) error {
	rows := make([]dao.Attendance, len(attendances))
	for i, a := range attendances {
		rows[i] = dao.Attendance{
			SeminarID: a.SeminarID,
			Day:       a.Day,
			MemberID:  a.MemberID,
			IPAddress: a.IPAddress,
			Location:  a.Location,
		}
	}

	if err := r.dao.InsertBatch(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return nil
}

func (r *AttendanceRepository) Exists(ctx context.Context, memberID, seminarID uint, day int) (bool, error) {
	exists, err := r.dao.Exists(ctx, memberID, seminarID, day)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *AttendanceRepository) Find(ctx context.Context, seminarID uint, day int) ([]domain.Attendance, error) {
	found, err := r.dao.Find(ctx, seminarID, day)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	attendances := make([]domain.Attendance, len(found))
	for i, a := range found {
		attendances[i] = r.daoToDomain(a)
	}

	return attendances, nil
}

func (r *AttendanceRepository) FindBySeminarID(ctx context.Context, seminarID uint) ([]domain.Attendance, error) {
	found, err := r.dao.FindBySeminarID(ctx, seminarID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySeminarID -> %w", err)
	}

	attendances := make([]domain.Attendance, len(found))
	for i, a := range found {
		attendances[i] = r.daoToDomain(a)
	}

	return attendances, nil
}

func (r *AttendanceRepository) DistinctMemberIDs(ctx context.Context, seminarID uint) ([]uint, error) {
	ids, err := r.dao.DistinctMemberIDs(ctx, seminarID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DistinctMemberIDs -> %w", err)
	}

	return ids, nil
}

func (r *AttendanceRepository) daoToDomain(a dao.Attendance) domain.Attendance {
	attendance := domain.Attendance{
		ID:        a.ID,
		SeminarID: a.SeminarID,
		Day:       a.Day,
		MemberID:  a.MemberID,
		IPAddress: a.IPAddress,
		Location:  a.Location,
		CreatedAt: a.CreatedAt,
	}

	if a.Member.ID != 0 {
		attendance.Member = &domain.Member{
			ID:          a.Member.ID,
			FirstName:   a.Member.FirstName,
			LastName:    a.Member.LastName,
			PFNumber:    a.Member.PFNumber,
			Department:  a.Member.Department,
			PhoneNumber: a.Member.PhoneNumber,
			CreatedAt:   a.Member.CreatedAt,
		}
	}

	return attendance
}

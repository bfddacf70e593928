package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrAttendanceExists = errors.New("attendance already recorded for this day")

type Attendance struct {
	ID uint `gorm:"primaryKey"`

	SeminarID uint `gorm:"not null;uniqueIndex:uq_member_day_attendance,priority:2"`
	Day       int  `gorm:"not null;uniqueIndex:uq_member_day_attendance,priority:3"`
	MemberID  uint `gorm:"not null;uniqueIndex:uq_member_day_attendance,priority:1"`

	IPAddress string `gorm:"size:45"`
	Location  string `gorm:"size:255"`

	Member Member `gorm:"foreignKey:MemberID"`

	CreatedAt time.Time `gorm:"not null"`
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

// Insert creates one attendance row. The unique index on
// (member_id, seminar_id, day) is the authoritative duplicate guard;
// a violation is reported as ErrAttendanceExists.
func (d *AttendanceDAO) Insert(ctx context.Context, attendance Attendance) (Attendance, error) {
	result := d.db.WithContext(ctx).Create(&attendance)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Attendance{}, ErrAttendanceExists
		}

		return Attendance{}, result.Error
	}

	return attendance, nil
}

// InsertBatch commits the given rows together.
func (d *AttendanceDAO) InsertBatch(ctx context.Context, attendances []Attendance) error {
	if len(attendances) == 0 {
		return nil
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&attendances).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAttendanceExists
		}

		return err
	}

	return nil
}

func (d *AttendanceDAO) Exists(ctx context.Context, memberID, seminarID uint, day int) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("member_id = ? AND seminar_id = ? AND day = ?", memberID, seminarID, day).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Find lists attendance rows, optionally filtered by seminar and/or day.
// Zero values mean "no filter".
func (d *AttendanceDAO) Find(ctx context.Context, seminarID uint, day int) ([]Attendance, error) {
	var attendances []Attendance

	query := d.db.WithContext(ctx).Preload("Member")
	if seminarID > 0 {
		query = query.Where("seminar_id = ?", seminarID)
	}
	if day > 0 {
		query = query.Where("day = ?", day)
	}

	result := query.Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendances, nil
}

func (d *AttendanceDAO) FindBySeminarID(ctx context.Context, seminarID uint) ([]Attendance, error) {
	var attendances []Attendance

	result := d.db.WithContext(ctx).Where("seminar_id = ?", seminarID).Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendances, nil
}

// DistinctMemberIDs returns the ids of members holding at least one
// attendance row for the seminar.
func (d *AttendanceDAO) DistinctMemberIDs(ctx context.Context, seminarID uint) ([]uint, error) {
	var ids []uint

	result := d.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("seminar_id = ?", seminarID).
		Distinct().
		Order("member_id ASC").
		Pluck("member_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

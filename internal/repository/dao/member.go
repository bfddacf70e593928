package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMemberPFNumberExists = errors.New("member with this PF number already exists")
	ErrMemberNotFound       = errors.New("member not found")
)

type Member struct {
	ID uint `gorm:"primaryKey"`

	FirstName   string `gorm:"size:100;not null"`
	LastName    string `gorm:"size:100;not null"`
	PFNumber    string `gorm:"size:12;unique;not null"`
	Department  string `gorm:"size:100"`
	PhoneNumber string `gorm:"size:15"`

	CreatedAt time.Time `gorm:"not null"`
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Member{}, ErrMemberPFNumberExists
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindAll(ctx context.Context) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) FindByID(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByPFNumber(ctx context.Context, pfNumber string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "pf_number = ?", pfNumber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByIDs(ctx context.Context, ids []uint) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

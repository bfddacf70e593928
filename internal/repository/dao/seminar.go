package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSeminarNotFound = errors.New("seminar not found")

type Seminar struct {
	ID uint `gorm:"primaryKey"`

	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	NumberOfDays int    `gorm:"not null"`
	StartDate    *time.Time
	Status       string `gorm:"size:50;default:draft"`

	Talks       []Talk       `gorm:"foreignKey:SeminarID;constraint:OnDelete:CASCADE"`
	Attendances []Attendance `gorm:"foreignKey:SeminarID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SeminarDAO struct {
	db *gorm.DB
}

func NewSeminarDAO(db *gorm.DB) *SeminarDAO {
	return &SeminarDAO{
		db: db,
	}
}

func (d *SeminarDAO) Insert(ctx context.Context, seminar Seminar) (Seminar, error) {
	result := d.db.WithContext(ctx).Create(&seminar)
	if result.Error != nil {
		return Seminar{}, result.Error
	}

	return seminar, nil
}

func (d *SeminarDAO) FindAll(ctx context.Context) ([]Seminar, error) {
	var seminars []Seminar

	result := d.db.WithContext(ctx).Preload("Talks").Find(&seminars)
	if result.Error != nil {
		return nil, result.Error
	}

	return seminars, nil
}

func (d *SeminarDAO) FindByID(ctx context.Context, id uint) (Seminar, error) {
	var seminar Seminar

	result := d.db.WithContext(ctx).Preload("Talks").First(&seminar, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Seminar{}, ErrSeminarNotFound
		}

		return Seminar{}, result.Error
	}

	return seminar, nil
}

// Update applies the given column set to one seminar. gorm touches
// updated_at on its own.
func (d *SeminarDAO) Update(ctx context.Context, id uint, fields map[string]interface{}) (Seminar, error) {
	result := d.db.WithContext(ctx).Model(&Seminar{ID: id}).Updates(fields)
	if result.Error != nil {
		return Seminar{}, result.Error
	}

	return d.FindByID(ctx, id)
}

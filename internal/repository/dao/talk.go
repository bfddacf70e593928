package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTalkNotFound = errors.New("talk not found")

type Talk struct {
	ID uint `gorm:"primaryKey"`

	Title           string `gorm:"size:255;not null"`
	Description     string `gorm:"type:text"`
	Day             int    `gorm:"not null"`
	Speaker         string `gorm:"size:255;not null"`
	PresentationURL string `gorm:"size:512"`
	TimeSlot        string `gorm:"size:50"`

	SeminarID uint    `gorm:"not null;index"`
	Seminar   Seminar `gorm:"foreignKey:SeminarID"`

	Comments []Comment `gorm:"foreignKey:TalkID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
}

type TalkDAO struct {
	db *gorm.DB
}

func NewTalkDAO(db *gorm.DB) *TalkDAO {
	return &TalkDAO{
		db: db,
	}
}

func (d *TalkDAO) Insert(ctx context.Context, talk Talk) (Talk, error) {
	result := d.db.WithContext(ctx).Create(&talk)
	if result.Error != nil {
		return Talk{}, result.Error
	}

	return talk, nil
}

func (d *TalkDAO) FindByID(ctx context.Context, id uint) (Talk, error) {
	var talk Talk

	result := d.db.WithContext(ctx).Preload("Seminar").First(&talk, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Talk{}, ErrTalkNotFound
		}

		return Talk{}, result.Error
	}

	return talk, nil
}

func (d *TalkDAO) Update(ctx context.Context, id uint, fields map[string]interface{}) (Talk, error) {
	result := d.db.WithContext(ctx).Model(&Talk{ID: id}).Updates(fields)
	if result.Error != nil {
		return Talk{}, result.Error
	}

	return d.FindByID(ctx, id)
}

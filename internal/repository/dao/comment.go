package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID uint `gorm:"primaryKey"`

	Content string `gorm:"type:text;not null"`

	TalkID uint `gorm:"not null;index"`

	// MemberID is nil for anonymous comments. ParentID points at the
	// comment being replied to; stored in the comment_id column to match
	// the wire field.
	MemberID *uint   `gorm:"index"`
	Member   *Member `gorm:"foreignKey:MemberID"`
	ParentID *uint   `gorm:"column:comment_id"`

	CreatedAt time.Time `gorm:"not null"`
}

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		db: db,
	}
}

func (d *CommentDAO) Insert(ctx context.Context, comment Comment) (Comment, error) {
	result := d.db.WithContext(ctx).Create(&comment)
	if result.Error != nil {
		return Comment{}, result.Error
	}

	return comment, nil
}

// FindByTalkID returns a talk's comments in stable temporal order,
// oldest first, insertion order breaking ties.
func (d *CommentDAO) FindByTalkID(ctx context.Context, talkID uint) ([]Comment, error) {
	var comments []Comment

	result := d.db.WithContext(ctx).
		Preload("Member").
		Where("talk_id = ?", talkID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}

	return comments, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/repository/dao"
)

var ErrTalkNotFound = dao.ErrTalkNotFound

type TalkDAO interface {
	Insert(ctx context.Context, talk dao.Talk) (dao.Talk, error)
	FindByID(ctx context.Context, id uint) (dao.Talk, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (dao.Talk, error)
}

type CommentDAO interface {
	Insert(ctx context.Context, comment dao.Comment) (dao.Comment, error)
	FindByTalkID(ctx context.Context, talkID uint) ([]dao.Comment, error)
}

type TalkRepository struct {
	dao        TalkDAO
	commentDAO CommentDAO
}

func NewTalkRepository(dao TalkDAO, commentDAO CommentDAO) *TalkRepository {
	return &TalkRepository{
		dao:        dao,
		commentDAO: commentDAO,
	}
}

func (r *TalkRepository) Create(ctx context.Context, talk domain.Talk) (domain.Talk, error) {
	created, err := r.dao.Insert(ctx, dao.Talk{
		Title:           talk.Title,
		Description:     talk.Description,
		Day:             talk.Day,
		Speaker:         talk.Speaker,
		PresentationURL: talk.PresentationURL,
		TimeSlot:        talk.TimeSlot,
		SeminarID:       talk.SeminarID,
	})
	if err != nil {
		return domain.Talk{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TalkRepository) FindByID(ctx context.Context, id uint) (domain.Talk, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TalkRepository) Update(ctx context.Context, id uint, patch domain.TalkPatch) (domain.Talk, error) {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Day != nil {
		fields["day"] = *patch.Day
	}
	if patch.Speaker != nil {
		fields["speaker"] = *patch.Speaker
	}
	if patch.TimeSlot != nil {
		fields["time_slot"] = *patch.TimeSlot
	}
	if patch.SeminarID != nil {
		fields["seminar_id"] = *patch.SeminarID
	}
	if patch.PresentationURL != nil {
		fields["presentation_url"] = *patch.PresentationURL
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TalkRepository) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.commentDAO.Insert(ctx, dao.Comment{
		Content:  comment.Content,
		TalkID:   comment.TalkID,
		MemberID: comment.MemberID,
		ParentID: comment.ParentID,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.commentDAO.Insert -> %w", err)
	}

	return r.commentDaoToDomain(created), nil
}

func (r *TalkRepository) FindComments(ctx context.Context, talkID uint) ([]domain.Comment, error) {
	found, err := r.commentDAO.FindByTalkID(ctx, talkID)
	if err != nil {
		return nil, fmt.Errorf("r.commentDAO.FindByTalkID -> %w", err)
	}

	comments := make([]domain.Comment, len(found))
	for i, c := range found {
		comments[i] = r.commentDaoToDomain(c)
	}

	return comments, nil
}

func (r *TalkRepository) daoToDomain(t dao.Talk) domain.Talk {
	talk := domain.Talk{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Day:             t.Day,
		Speaker:         t.Speaker,
		PresentationURL: t.PresentationURL,
		TimeSlot:        t.TimeSlot,
		SeminarID:       t.SeminarID,
		CreatedAt:       t.CreatedAt,
	}

	if t.Seminar.ID != 0 {
		talk.Seminar = &domain.Seminar{
			ID:           t.Seminar.ID,
			Title:        t.Seminar.Title,
			Description:  t.Seminar.Description,
			NumberOfDays: t.Seminar.NumberOfDays,
			StartDate:    t.Seminar.StartDate,
			Status:       t.Seminar.Status,
			CreatedAt:    t.Seminar.CreatedAt,
			UpdatedAt:    t.Seminar.UpdatedAt,
		}
	}

	return talk
}

func (r *TalkRepository) commentDaoToDomain(c dao.Comment) domain.Comment {
	comment := domain.Comment{
		ID:        c.ID,
		Content:   c.Content,
		TalkID:    c.TalkID,
		MemberID:  c.MemberID,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}

	if c.Member != nil {
		comment.Member = &domain.Member{
			ID:        c.Member.ID,
			FirstName: c.Member.FirstName,
			LastName:  c.Member.LastName,
			PFNumber:  c.Member.PFNumber,
			CreatedAt: c.Member.CreatedAt,
		}
	}

	return comment
}

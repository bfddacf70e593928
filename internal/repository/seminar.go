package repository

import (
	"context"
	"fmt"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/repository/dao"
)

var ErrSeminarNotFound = dao.ErrSeminarNotFound

type SeminarDAO interface {
	Insert(ctx context.Context, seminar dao.Seminar) (dao.Seminar, error)
	FindAll(ctx context.Context) ([]dao.Seminar, error)
	FindByID(ctx context.Context, id uint) (dao.Seminar, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (dao.Seminar, error)
}

type SeminarRepository struct {
	dao SeminarDAO
}

func NewSeminarRepository(dao SeminarDAO) *SeminarRepository {
	return &SeminarRepository{
		dao: dao,
	}
}

func (r *SeminarRepository) Create(ctx context.Context, seminar domain.Seminar) (domain.Seminar, error) {
	created, err := r.dao.Insert(ctx, dao.Seminar{
		Title:        seminar.Title,
		Description:  seminar.Description,
		NumberOfDays: seminar.NumberOfDays,
		StartDate:    seminar.StartDate,
		Status:       seminar.Status,
	})
	if err != nil {
		return domain.Seminar{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SeminarRepository) FindAll(ctx context.Context) ([]domain.Seminar, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	seminars := make([]domain.Seminar, len(found))
	for i, s := range found {
		seminars[i] = r.daoToDomain(s)
	}

	return seminars, nil
}

func (r *SeminarRepository) FindByID(ctx context.Context, id uint) (domain.Seminar, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Seminar{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SeminarRepository) Update(ctx context.Context, id uint, patch domain.SeminarPatch) (domain.Seminar, error) {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.NumberOfDays != nil {
		fields["number_of_days"] = *patch.NumberOfDays
	}
	if patch.StartDate != nil {
		fields["start_date"] = *patch.StartDate
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Seminar{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SeminarRepository) daoToDomain(s dao.Seminar) domain.Seminar {
	talks := make([]domain.Talk, len(s.Talks))
	for i, t := range s.Talks {
		talks[i] = domain.Talk{
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
	}

	return domain.Seminar{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		NumberOfDays: s.NumberOfDays,
		StartDate:    s.StartDate,
		Status:       s.Status,
		Talks:        talks,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

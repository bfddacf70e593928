package repository

import (
	"context"
	"fmt"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/repository/dao"
)

var (
	ErrMemberPFNumberExists = dao.ErrMemberPFNumberExists
	ErrMemberNotFound       = dao.ErrMemberNotFound
)

type MemberDAO interface {
	Insert(ctx context.Context, member dao.Member) (dao.Member, error)
	FindAll(ctx context.Context) ([]dao.Member, error)
	FindByID(ctx context.Context, id uint) (dao.Member, error)
	FindByPFNumber(ctx context.Context, pfNumber string) (dao.Member, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Member, error)
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.Insert(ctx, dao.Member{
		FirstName:   member.FirstName,
		LastName:    member.LastName,
		PFNumber:    member.PFNumber,
		Department:  member.Department,
		PhoneNumber: member.PhoneNumber,
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]domain.Member, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByPFNumber(ctx context.Context, pfNumber string) (domain.Member, error) {
	found, err := r.dao.FindByPFNumber(ctx, pfNumber)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByPFNumber -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Member, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *MemberRepository) daoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		PFNumber:    m.PFNumber,
		Department:  m.Department,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *MemberRepository) daoToDomainSlice(found []dao.Member) []domain.Member {
	members := make([]domain.Member, len(found))
	for i, m := range found {
		members[i] = r.daoToDomain(m)
	}

	return members
}

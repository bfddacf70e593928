package service

import (
	"context"
	"fmt"
	"io"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/pkg/upload"
	"github.com/attendly/seminar-api/internal/repository"
)

var ErrTalkNotFound = repository.ErrTalkNotFound

type TalkRepository interface {
	Create(ctx context.Context, talk domain.Talk) (domain.Talk, error)
	FindByID(ctx context.Context, id uint) (domain.Talk, error)
	Update(ctx context.Context, id uint, patch domain.TalkPatch) (domain.Talk, error)
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	FindComments(ctx context.Context, talkID uint) ([]domain.Comment, error)
}

// PresentationFile is an uploaded file stream from a multipart request.
type PresentationFile struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type TalkService struct {
	repo     TalkRepository
	uploader upload.Uploader
}

func NewTalkService(repo TalkRepository, uploader upload.Uploader) *TalkService {
	return &TalkService{
		repo:     repo,
		uploader: uploader,
	}
}

// CreateTalk persists a talk, uploading the presentation first when one
// is supplied. A rejected file fails the whole call; no talk is created.
func (s *TalkService) CreateTalk(ctx context.Context, talk domain.Talk, file *PresentationFile) (domain.Talk, error) {
	if file != nil {
		url, err := s.uploader.Upload(ctx, file.Reader, file.Filename, file.ContentType, file.Size)
		if err != nil {
			return domain.Talk{}, fmt.Errorf("s.uploader.Upload -> %w", err)
		}
		talk.PresentationURL = url
	}

	created, err := s.repo.Create(ctx, talk)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TalkService) GetTalk(ctx context.Context, id uint) (domain.Talk, error) {
	talk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return talk, nil
}

// UpdateTalk applies a partial update; a newly supplied file replaces
// the stored presentation URL.
func (s *TalkService) UpdateTalk(ctx context.Context, id uint, patch domain.TalkPatch, file *PresentationFile) (domain.Talk, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.Talk{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if file != nil {
		url, err := s.uploader.Upload(ctx, file.Reader, file.Filename, file.ContentType, file.Size)
		if err != nil {
			return domain.Talk{}, fmt.Errorf("s.uploader.Upload -> %w", err)
		}
		patch.PresentationURL = &url
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CreateComment attaches a comment to the talk named by the path; the
// talk id always comes from there, never from the body.
func (s *TalkService) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	if _, err := s.repo.FindByID(ctx, comment.TalkID); err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.CreateComment -> %w", err)
	}

	return created, nil
}

func (s *TalkService) ListComments(ctx context.Context, talkID uint) ([]domain.Comment, error) {
	if _, err := s.repo.FindByID(ctx, talkID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	comments, err := s.repo.FindComments(ctx, talkID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindComments -> %w", err)
	}

	return comments, nil
}

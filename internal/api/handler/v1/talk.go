package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attendly/seminar-api/internal/api/handler/v1/request"
	"github.com/attendly/seminar-api/internal/api/handler/v1/response"
	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/pkg/upload"
	"github.com/attendly/seminar-api/internal/service"
)

type TalkService interface {
	CreateTalk(ctx context.Context, talk domain.Talk, file *service.PresentationFile) (domain.Talk, error)
	GetTalk(ctx context.Context, id uint) (domain.Talk, error)
	UpdateTalk(ctx context.Context, id uint, patch domain.TalkPatch, file *service.PresentationFile) (domain.Talk, error)
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	ListComments(ctx context.Context, talkID uint) ([]domain.Comment, error)
}

type TalkHandler struct {
	svc TalkService
}

func NewTalkHandler(svc TalkService) *TalkHandler {
	return &TalkHandler{
		svc: svc,
	}
}

// presentationFile extracts the optional "file" part of the multipart
// form. A missing part or an empty filename both mean no file.
func presentationFile(ctx *gin.Context) (*service.PresentationFile, func(), error) {
	header, err := ctx.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, nil, err
	}
	if header.Filename == "" {
		return nil, func() {}, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	file := &service.PresentationFile{
		Reader:      f,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	return file, func() { _ = f.Close() }, nil
}

// HandleGetTalk godoc
// @Summary      Get a talk by ID
// @Tags         talks
// @Produce      json
// @Param        talkID  path      int  true  "talk ID"
// @Success      200     {object}  response.Talk
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /talks/{talkID} [get]
func (h *TalkHandler) HandleGetTalk(ctx *gin.Context) {
	talkID, err := parseIDParam(ctx, "talkID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	talk, err := h.svc.GetTalk(ctx.Request.Context(), talkID)
	if err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("talk", "ID", talkID))
			return
		}

		err = fmt.Errorf("HandleGetTalk -> h.svc.GetTalk -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTalk(talk))
}

// HandleCreateTalk godoc
// @Summary      Create a new talk
// @Description  Accepts multipart form fields plus an optional presentation file
// @Tags         talks
// @Accept       multipart/form-data
// @Produce      json
// @Param        title      formData  string  true   "talk title"
// @Param        day        formData  int     true   "seminar day the talk runs on"
// @Param        speaker    formData  string  true   "speaker name"
// @Param        seminarId  formData  int     true   "owning seminar ID"
// @Param        file       formData  file    false  "presentation (.pdf, .ppt, .pptx)"
// @Success      201        {object}  response.Talk
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /talks [post]
// @Security     AdminToken
func (h *TalkHandler) HandleCreateTalk(ctx *gin.Context) {
	var input request.CreateTalkRequest
	if err := ctx.ShouldBind(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	file, closeFile, err := presentationFile(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer closeFile()

	talk := domain.Talk{
		Title:       input.Title,
		Description: input.Description,
		Day:         input.Day,
		Speaker:     input.Speaker,
		TimeSlot:    input.TimeSlot,
		SeminarID:   input.SeminarID,
	}

	created, err := h.svc.CreateTalk(ctx.Request.Context(), talk, file)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidFileType) {
			response.RenderErr(ctx, response.ErrBadRequest(upload.ErrInvalidFileType))
			return
		}

		err = fmt.Errorf("HandleCreateTalk -> h.svc.CreateTalk -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewTalk(created))
}

// HandleUpdateTalk godoc
// @Summary      Update a talk
// @Description  Applies a partial multipart update; a new file replaces the stored presentation
// @Tags         talks
// @Accept       multipart/form-data
// @Produce      json
// @Param        talkID  path      int   true   "talk ID"
// @Param        file    formData  file  false  "presentation (.pdf, .ppt, .pptx)"
// @Success      200     {object}  response.Talk
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /talks/{talkID} [patch]
// @Security     AdminToken
func (h *TalkHandler) HandleUpdateTalk(ctx *gin.Context) {
	talkID, err := parseIDParam(ctx, "talkID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateTalkRequest
	if err = ctx.ShouldBind(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	file, closeFile, err := presentationFile(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer closeFile()

	patch := domain.TalkPatch{
		Title:       input.Title,
		Description: input.Description,
		Day:         input.Day,
		Speaker:     input.Speaker,
		TimeSlot:    input.TimeSlot,
		SeminarID:   input.SeminarID,
	}

	updated, err := h.svc.UpdateTalk(ctx.Request.Context(), talkID, patch, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTalkNotFound):
			response.RenderErr(ctx, response.ErrNotFound("talk", "ID", talkID))
		case errors.Is(err, upload.ErrInvalidFileType):
			response.RenderErr(ctx, response.ErrBadRequest(upload.ErrInvalidFileType))
		default:
			err = fmt.Errorf("HandleUpdateTalk -> h.svc.UpdateTalk -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewTalk(updated))
}

// HandleCreateComment godoc
// @Summary      Comment on a talk
// @Description  The talk comes from the path; commentId references the comment being replied to
// @Tags         talks
// @Accept       json
// @Produce      json
// @Param        talkID  path      int                           true  "talk ID"
// @Param        input   body      request.CreateCommentRequest  true  "comment body"
// @Success      201     {object}  response.Comment
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /talks/{talkID}/comments [post]
func (h *TalkHandler) HandleCreateComment(ctx *gin.Context) {
	talkID, err := parseIDParam(ctx, "talkID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.CreateCommentRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	comment := domain.Comment{
		Content:  input.Content,
		TalkID:   talkID,
		MemberID: input.MemberID,
		ParentID: input.CommentID,
	}

	created, err := h.svc.CreateComment(ctx.Request.Context(), comment)
	if err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("talk", "ID", talkID))
			return
		}

		err = fmt.Errorf("HandleCreateComment -> h.svc.CreateComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewComment(created))
}

// HandleListComments godoc
// @Summary      List comments on a talk
// @Description  Oldest first
// @Tags         talks
// @Produce      json
// @Param        talkID  path      int  true  "talk ID"
// @Success      200     {array}   response.Comment
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /talks/{talkID}/comments [get]
func (h *TalkHandler) HandleListComments(ctx *gin.Context) {
	talkID, err := parseIDParam(ctx, "talkID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	comments, err := h.svc.ListComments(ctx.Request.Context(), talkID)
	if err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("talk", "ID", talkID))
			return
		}

		err = fmt.Errorf("HandleListComments -> h.svc.ListComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewComments(comments))
}

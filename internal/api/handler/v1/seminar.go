package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/attendly/seminar-api/internal/api/handler/v1/request"
	"github.com/attendly/seminar-api/internal/api/handler/v1/response"
	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/service"
)

type SeminarService interface {
	ListSeminars(ctx context.Context) ([]domain.Seminar, error)
	GetSeminar(ctx context.Context, id uint) (domain.Seminar, error)
	CreateSeminar(ctx context.Context, seminar domain.Seminar) (domain.Seminar, error)
	UpdateSeminar(ctx context.Context, id uint, patch domain.SeminarPatch) (domain.Seminar, error)
	RegisteredMembers(ctx context.Context, seminarID uint) ([]domain.Member, error)
	RegisterMember(ctx context.Context, seminarID, memberID uint) error
}

type SeminarHandler struct {
	svc SeminarService
}

func NewSeminarHandler(svc SeminarService) *SeminarHandler {
	return &SeminarHandler{
		svc: svc,
	}
}

const seminarDateLayout = "2006-01-02"

// HandleListSeminars godoc
// @Summary      List all seminars
// @Description  Retrieves every seminar with its talks nested
// @Tags         seminars
// @Produce      json
// @Success      200  {array}   response.Seminar
// @Failure      500  {object}  response.Err
// @Router       /seminars [get]
func (h *SeminarHandler) HandleListSeminars(ctx *gin.Context) {
	seminars, err := h.svc.ListSeminars(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListSeminars -> h.svc.ListSeminars -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSeminars(seminars))
}

// HandleGetSeminar godoc
// @Summary      Get a seminar by ID
// @Tags         seminars
// @Produce      json
// @Param        seminarID  path      int  true  "seminar ID"
// @Success      200        {object}  response.Seminar
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /seminars/{seminarID} [get]
func (h *SeminarHandler) HandleGetSeminar(ctx *gin.Context) {
	seminarID, err := parseIDParam(ctx, "seminarID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	seminar, err := h.svc.GetSeminar(ctx.Request.Context(), seminarID)
	if err != nil {
		if errors.Is(err, service.ErrSeminarNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("seminar", "ID", seminarID))
			return
		}

		err = fmt.Errorf("HandleGetSeminar -> h.svc.GetSeminar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSeminar(seminar))
}

// HandleCreateSeminar godoc
// @Summary      Create a new seminar
// @Tags         seminars
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateSeminarRequest  true  "seminar details"
// @Success      201    {object}  response.Seminar
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /seminars [post]
// @Security     AdminToken
func (h *SeminarHandler) HandleCreateSeminar(ctx *gin.Context) {
	var input request.CreateSeminarRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	seminar := domain.Seminar{
		Title:        input.Title,
		Description:  input.Description,
		NumberOfDays: input.NumberOfDays,
		Status:       input.Status,
	}

	if input.StartDate != "" {
		startDate, err := time.Parse(seminarDateLayout, input.StartDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
			return
		}
		seminar.StartDate = &startDate
	}

	created, err := h.svc.CreateSeminar(ctx.Request.Context(), seminar)
	if err != nil {
		err = fmt.Errorf("HandleCreateSeminar -> h.svc.CreateSeminar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSeminar(created))
}

// HandleUpdateSeminar godoc
// @Summary      Update a seminar
// @Description  Applies a partial update; absent fields keep their stored values
// @Tags         seminars
// @Accept       json
// @Produce      json
// @Param        seminarID  path      int                           true  "seminar ID"
// @Param        input      body      request.UpdateSeminarRequest  true  "fields to update"
// @Success      200        {object}  response.Seminar
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /seminars/{seminarID} [patch]
// @Security     AdminToken
func (h *SeminarHandler) HandleUpdateSeminar(ctx *gin.Context) {
	seminarID, err := parseIDParam(ctx, "seminarID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateSeminarRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	patch := domain.SeminarPatch{
		Title:        input.Title,
		Description:  input.Description,
		NumberOfDays: input.NumberOfDays,
		Status:       input.Status,
	}

	if input.StartDate != nil {
		startDate, parseErr := time.Parse(seminarDateLayout, *input.StartDate)
		if parseErr != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", parseErr)))
			return
		}
		patch.StartDate = &startDate
	}

	updated, err := h.svc.UpdateSeminar(ctx.Request.Context(), seminarID, patch)
	if err != nil {
		if errors.Is(err, service.ErrSeminarNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("seminar", "ID", seminarID))
			return
		}

		err = fmt.Errorf("HandleUpdateSeminar -> h.svc.UpdateSeminar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSeminar(updated))
}

// HandleGetRegisteredMembers godoc
// @Summary      List members registered for a seminar
// @Description  A member is registered once they hold at least one attendance row for the seminar
// @Tags         seminars
// @Produce      json
// @Param        seminarID  path      int  true  "seminar ID"
// @Success      200        {array}   response.Member
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /seminars/{seminarID}/register [get]
func (h *SeminarHandler) HandleGetRegisteredMembers(ctx *gin.Context) {
	seminarID, err := parseIDParam(ctx, "seminarID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	members, err := h.svc.RegisteredMembers(ctx.Request.Context(), seminarID)
	if err != nil {
		if errors.Is(err, service.ErrSeminarNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("seminar", "ID", seminarID))
			return
		}

		err = fmt.Errorf("HandleGetRegisteredMembers -> h.svc.RegisteredMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMembers(members))
}

// HandleRegisterMember godoc
// @Summary      Register a member for all days of a seminar
// @Description  Creates one attendance row per seminar day, skipping days already covered
// @Tags         seminars
// @Accept       json
// @Produce      json
// @Param        seminarID  path      int                            true  "seminar ID"
// @Param        input      body      request.RegisterMemberRequest  true  "member to register"
// @Success      200        {object}  map[string]string
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /seminars/{seminarID}/register [post]
// @Security     AdminToken
func (h *SeminarHandler) HandleRegisterMember(ctx *gin.Context) {
	seminarID, err := parseIDParam(ctx, "seminarID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.RegisterMemberRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err = h.svc.RegisterMember(ctx.Request.Context(), seminarID, input.MemberID); err != nil {
		switch {
		case errors.Is(err, service.ErrSeminarNotFound):
			response.RenderErr(ctx, response.ErrNotFound("seminar", "ID", seminarID))
		case errors.Is(err, service.ErrMemberNotFound):
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", input.MemberID))
		default:
			err = fmt.Errorf("HandleRegisterMember -> h.svc.RegisterMember -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member registered successfully"})
}

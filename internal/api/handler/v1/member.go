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
	"github.com/attendly/seminar-api/internal/pkg/roster"
	"github.com/attendly/seminar-api/internal/service"
)

type MemberService interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	CreateMember(ctx context.Context, member domain.Member) (domain.Member, error)
	ImportRoster(ctx context.Context, rows []roster.MemberRow) (domain.ImportReport, error)
}

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler {
	return &MemberHandler{
		svc: svc,
	}
}

// HandleListMembers godoc
// @Summary      List all members
// @Tags         members
// @Produce      json
// @Success      200  {array}   response.Member
// @Failure      500  {object}  response.Err
// @Router       /members [get]
func (h *MemberHandler) HandleListMembers(ctx *gin.Context) {
	members, err := h.svc.ListMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListMembers -> h.svc.ListMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMembers(members))
}

// HandleCreateMember godoc
// @Summary      Create a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateMemberRequest  true  "member details"
// @Success      201    {object}  response.Member
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /members [post]
// @Security     AdminToken
func (h *MemberHandler) HandleCreateMember(ctx *gin.Context) {
	var input request.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	member := domain.Member{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PFNumber:    input.PFNumber,
		Department:  input.Department,
		PhoneNumber: input.PhoneNumber,
	}

	created, err := h.svc.CreateMember(ctx.Request.Context(), member)
	if err != nil {
		if errors.Is(err, service.ErrMemberPFNumberExists) {
			response.RenderErr(ctx, response.ErrConflict("Member with this PF number already exists"))
			return
		}

		err = fmt.Errorf("HandleCreateMember -> h.svc.CreateMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewMember(created))
}

// HandleImportMembers godoc
// @Summary      Bulk import members from a spreadsheet
// @Description  Accepts a CSV or XLSX roster; bad rows and duplicates are skipped, never rolled back
// @Tags         members
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "roster file (.csv or .xlsx)"
// @Success      200   {object}  response.ImportReport
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /members/import [post]
// @Security     AdminToken
func (h *MemberHandler) HandleImportMembers(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("no file provided")))
		return
	}
	if header.Filename == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("no file selected")))
		return
	}

	f, err := header.Open()
	if err != nil {
		err = fmt.Errorf("HandleImportMembers -> header.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	defer f.Close()

	rows, err := roster.Parse(f, header.Filename)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.svc.ImportRoster(ctx.Request.Context(), rows)
	if err != nil {
		err = fmt.Errorf("HandleImportMembers -> h.svc.ImportRoster -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewImportReport(report))
}

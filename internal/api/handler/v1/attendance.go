package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/attendly/seminar-api/internal/api/handler/v1/request"
	"github.com/attendly/seminar-api/internal/api/handler/v1/response"
	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/pkg/roster"
	"github.com/attendly/seminar-api/internal/service"
)

type AttendanceService interface {
	ListAttendance(ctx context.Context, seminarID uint, day int) ([]domain.Attendance, error)
	SignIn(ctx context.Context, pfNumber string, seminarID uint, day int, ipAddress, location string) (domain.Attendance, error)
	Export(ctx context.Context, seminarID uint) (*excelize.File, domain.Seminar, error)
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

// HandleListAttendance godoc
// @Summary      List attendance records
// @Description  Optionally filtered by seminar and/or day; each row nests its member
// @Tags         attendance
// @Produce      json
// @Param        seminarId  query     int  false  "filter by seminar ID"
// @Param        day        query     int  false  "filter by day"
// @Success      200        {array}   response.Attendance
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /attendance [get]
func (h *AttendanceHandler) HandleListAttendance(ctx *gin.Context) {
	var seminarID uint
	if raw := ctx.Query("seminarId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v is not a valid seminarId", raw)))
			return
		}
		seminarID = uint(parsed)
	}

	var day int
	if raw := ctx.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v is not a valid day", raw)))
			return
		}
		day = parsed
	}

	attendances, err := h.svc.ListAttendance(ctx.Request.Context(), seminarID, day)
	if err != nil {
		err = fmt.Errorf("HandleListAttendance -> h.svc.ListAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendances(attendances))
}

// HandleSignIn godoc
// @Summary      Sign a member in for a seminar day
// @Description  The client IP and the X-Location header are recorded with the row
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        input  body      request.SignInRequest  true  "sign-in details"
// @Success      201    {object}  response.Attendance
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /attendance/sign-in [post]
func (h *AttendanceHandler) HandleSignIn(ctx *gin.Context) {
	var input request.SignInRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	// X-Forwarded-For is trusted verbatim when present, proxy chain
	// included.
	ipAddress := ctx.GetHeader("X-Forwarded-For")
	if ipAddress == "" {
		ipAddress = ctx.ClientIP()
	}
	location := ctx.GetHeader("X-Location")

	created, err := h.svc.SignIn(ctx.Request.Context(), input.PFNumber, input.SeminarID, input.DayID, ipAddress, location)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.RenderErr(ctx, response.ErrNotFound("member", "pfNumber", input.PFNumber))
		case errors.Is(err, service.ErrSeminarNotFound):
			response.RenderErr(ctx, response.ErrNotFound("seminar", "ID", input.SeminarID))
		case errors.Is(err, service.ErrAttendanceExists):
			response.RenderErr(ctx, response.ErrConflict("Already signed in for this day"))
		default:
			err = fmt.Errorf("HandleSignIn -> h.svc.SignIn -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewAttendance(created))
}

// HandleExportAttendance godoc
// @Summary      Export a seminar's attendance matrix as a spreadsheet
// @Description  One row per registered member, one Yes/No column per day
// @Tags         attendance
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        seminarId  query  int  true  "seminar ID"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /attendance/export [get]
// @Security     AdminToken
func (h *AttendanceHandler) HandleExportAttendance(ctx *gin.Context) {
	raw := ctx.Query("seminarId")
	if raw == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("seminarId is required")))
		return
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v is not a valid seminarId", raw)))
		return
	}
	seminarID := uint(parsed)

	workbook, seminar, err := h.svc.Export(ctx.Request.Context(), seminarID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSeminarNotFound):
			response.RenderErr(ctx, response.ErrNotFound("seminar", "ID", seminarID))
		case errors.Is(err, service.ErrNoRegisteredMembers):
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusNotFound,
				Message:    "No registered members found",
			})
		default:
			err = fmt.Errorf("HandleExportAttendance -> h.svc.Export -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	filename := fmt.Sprintf("%v_attendance.xlsx", seminar.Title)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", url.PathEscape(filename)))
	ctx.Header("Content-Type", roster.SpreadsheetMIME)

	if err = workbook.Write(ctx.Writer); err != nil {
		err = fmt.Errorf("HandleExportAttendance -> workbook.Write -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

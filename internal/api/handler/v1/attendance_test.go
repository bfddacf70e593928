package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/service"
)

type stubAttendanceService struct {
	listErr   error
	signInErr error
	exportErr error

	created domain.Attendance
	seminar domain.Seminar

	gotIPAddress string
	gotLocation  string
}

func (s *stubAttendanceService) ListAttendance(context.Context, uint, int) ([]domain.Attendance, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	return []domain.Attendance{}, nil
}

func (s *stubAttendanceService) SignIn(_ context.Context, _ string, _ uint, _ int, ipAddress, location string) (domain.Attendance, error) {
	s.gotIPAddress = ipAddress
	s.gotLocation = location

	if s.signInErr != nil {
		return domain.Attendance{}, s.signInErr
	}

	return s.created, nil
}

func (s *stubAttendanceService) Export(context.Context, uint) (*excelize.File, domain.Seminar, error) {
	if s.exportErr != nil {
		return nil, domain.Seminar{}, s.exportErr
	}

	return excelize.NewFile(), s.seminar, nil
}

func attendanceRouter(svc AttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewAttendanceHandler(svc)
	router.GET("/api/attendance", handler.HandleListAttendance)
	router.POST("/api/attendance/sign-in", handler.HandleSignIn)
	router.GET("/api/attendance/export", handler.HandleExportAttendance)

	return router
}

func TestHandleSignIn(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &stubAttendanceService{
			created: domain.Attendance{
				ID:        1,
				SeminarID: 2,
				Day:       3,
				MemberID:  7,
				IPAddress: "203.0.113.9",
				Location:  "Lagos",
				Member:    &domain.Member{ID: 7, FirstName: "Ada", LastName: "Lovelace", PFNumber: "1234"},
			},
		}
		router := attendanceRouter(stub)

		body := `{"pfNumber":"1234","dayId":3,"seminarId":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		req.Header.Set("X-Location", "Lagos")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "203.0.113.9", stub.gotIPAddress)
		assert.Equal(t, "Lagos", stub.gotLocation)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, float64(7), got["memberId"])
		assert.Equal(t, float64(3), got["day"])

		member, ok := got["member"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Ada", member["firstName"])
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{})

		req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(`{"dayId":1}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var got struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Contains(t, got.Errors, "pfNumber")
		assert.Contains(t, got.Errors, "seminarId")
	})

	t.Run("duplicate sign-in", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{signInErr: service.ErrAttendanceExists})

		body := `{"pfNumber":"1234","dayId":1,"seminarId":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Already signed in for this day"}`, rec.Body.String())
	})

	t.Run("unknown member", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{signInErr: service.ErrMemberNotFound})

		body := `{"pfNumber":"9999","dayId":1,"seminarId":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	// A malformed PF number is not a validation failure; it reaches the
	// member lookup and comes back as a not-found.
	t.Run("malformed pf number is a not-found", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{signInErr: service.ErrMemberNotFound})

		body := `{"pfNumber":"12a4","dayId":1,"seminarId":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListAttendance(t *testing.T) {
	t.Run("non-numeric filter", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{})

		req := httptest.NewRequest(http.MethodGet, "/api/attendance?day=tuesday", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty result is a json array", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{})

		req := httptest.NewRequest(http.MethodGet, "/api/attendance?seminarId=1&day=2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandleExportAttendance(t *testing.T) {
	t.Run("missing seminarId", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{})

		req := httptest.NewRequest(http.MethodGet, "/api/attendance/export", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"seminarId is required"}`, rec.Body.String())
	})

	t.Run("no registered members", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{exportErr: service.ErrNoRegisteredMembers})

		req := httptest.NewRequest(http.MethodGet, "/api/attendance/export?seminarId=1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"No registered members found"}`, rec.Body.String())
	})

	t.Run("streams the workbook", func(t *testing.T) {
		router := attendanceRouter(&stubAttendanceService{seminar: domain.Seminar{ID: 1, Title: "Go Week"}})

		req := httptest.NewRequest(http.MethodGet, "/api/attendance/export?seminarId=1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "Go%20Week_attendance.xlsx")
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		assert.NotZero(t, rec.Body.Len())
	})
}

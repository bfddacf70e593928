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

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/service"
)

type stubSeminarService struct {
	getErr      error
	updateErr   error
	registerErr error

	created     domain.Seminar
	createCalls int
}

func (s *stubSeminarService) ListSeminars(context.Context) ([]domain.Seminar, error) {
	return []domain.Seminar{}, nil
}

func (s *stubSeminarService) GetSeminar(context.Context, uint) (domain.Seminar, error) {
	if s.getErr != nil {
		return domain.Seminar{}, s.getErr
	}

	return s.created, nil
}

func (s *stubSeminarService) CreateSeminar(_ context.Context, seminar domain.Seminar) (domain.Seminar, error) {
	s.createCalls++
	seminar.ID = 1
	s.created = seminar

	return seminar, nil
}

func (s *stubSeminarService) UpdateSeminar(context.Context, uint, domain.SeminarPatch) (domain.Seminar, error) {
	if s.updateErr != nil {
		return domain.Seminar{}, s.updateErr
	}

	return s.created, nil
}

func (s *stubSeminarService) RegisteredMembers(context.Context, uint) ([]domain.Member, error) {
	return []domain.Member{}, nil
}

func (s *stubSeminarService) RegisterMember(context.Context, uint, uint) error {
	return s.registerErr
}

func seminarRouter(svc SeminarService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewSeminarHandler(svc)
	router.GET("/api/seminars/:seminarID", handler.HandleGetSeminar)
	router.POST("/api/seminars", handler.HandleCreateSeminar)
	router.PATCH("/api/seminars/:seminarID", handler.HandleUpdateSeminar)
	router.POST("/api/seminars/:seminarID/register", handler.HandleRegisterMember)

	return router
}

func TestHandleCreateSeminar(t *testing.T) {
	t.Run("created with parsed start date", func(t *testing.T) {
		stub := &stubSeminarService{}
		router := seminarRouter(stub)

		body := `{"title":"Go Week","numberOfDays":3,"startDate":"2026-09-14"}`
		req := httptest.NewRequest(http.MethodPost, "/api/seminars", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, stub.created.StartDate)
		assert.Equal(t, "2026-09-14", stub.created.StartDate.Format("2006-01-02"))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Go Week", got["title"])
		assert.Equal(t, float64(3), got["numberOfDays"])
	})

	t.Run("validation failure skips the service", func(t *testing.T) {
		stub := &stubSeminarService{}
		router := seminarRouter(stub)

		req := httptest.NewRequest(http.MethodPost, "/api/seminars", strings.NewReader(`{"description":"no title"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, stub.createCalls)

		var got struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Contains(t, got.Errors, "title")
		assert.Contains(t, got.Errors, "numberOfDays")
	})
}

func TestHandleGetSeminar(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		router := seminarRouter(&stubSeminarService{getErr: service.ErrSeminarNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/seminars/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"seminar with ID 99 not found"}`, rec.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := seminarRouter(&stubSeminarService{})

		req := httptest.NewRequest(http.MethodGet, "/api/seminars/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRegisterMember(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		router := seminarRouter(&stubSeminarService{})

		req := httptest.NewRequest(http.MethodPost, "/api/seminars/1/register", strings.NewReader(`{"memberId":7}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Member registered successfully"}`, rec.Body.String())
	})

	t.Run("missing memberId", func(t *testing.T) {
		router := seminarRouter(&stubSeminarService{})

		req := httptest.NewRequest(http.MethodPost, "/api/seminars/1/register", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown member", func(t *testing.T) {
		router := seminarRouter(&stubSeminarService{registerErr: service.ErrMemberNotFound})

		req := httptest.NewRequest(http.MethodPost, "/api/seminars/1/register", strings.NewReader(`{"memberId":99}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the wire shape of every failure: either a single message or a
// field→message map for validation failures.
type Err struct {
	StatusCode int `json:"-"`

	Message string            `json:"error,omitempty"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.StatusCode, e.Message)
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

// ErrValidation renders ozzo errors as a field→message map; anything
// else falls back to a plain bad request.
func ErrValidation(err error) *Err {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}

		return &Err{
			StatusCode: http.StatusBadRequest,
			Fields:     fields,
		}
	}

	return ErrBadRequest(err)
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v with %v %v not found", resource, key, value),
	}
}

func ErrConflict(message string) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Message:    message,
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized",
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
	}
}

package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/attendly/seminar-api/internal/api/handler/v1/response"
)

const adminTokenHeader = "x-admin-token"

// RequireAdmin rejects requests whose admin token header does not match
// the server secret. The check runs before any handler touches storage.
// An empty configured secret locks the guarded routes entirely.
func RequireAdmin(adminToken string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader(adminTokenHeader)
		if adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			response.RenderErr(ctx, response.ErrUnauthorized())
			return
		}

		ctx.Next()
	}
}

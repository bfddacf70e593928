package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Check API health
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

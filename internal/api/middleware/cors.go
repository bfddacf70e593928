package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS policy from a comma-separated domain list.
// "*" allows every origin.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Token", "X-Location", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	domains := strings.Split(allowedDomains, ",")
	for i, domain := range domains {
		domains[i] = strings.TrimSpace(domain)
	}

	if len(domains) == 1 && domains[0] == "*" {
		conf.AllowCredentials = false
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = domains
	}

	return cors.New(conf)
}

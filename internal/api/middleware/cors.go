package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS configures CORS middleware. An empty origin list allows every origin.
func SetupCORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins:  len(allowedOrigins) == 0,
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", HEADER_SIGNATURE, HEADER_SIGNED_MESSAGE, HEADER_REQUEST_ID},
		ExposeHeaders:    []string{"Content-Length", HEADER_REQUEST_ID},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
	return cors.New(config)
}

package middleware

import (
	"time"

	"blog-api/helper"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origin, or every origin for "*".
func CORS(origin string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", helper.RequestIDHeader},
		ExposeHeaders: []string{"Link", helper.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if origin == "" || origin == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = []string{origin}
	}

	return cors.New(config)
}

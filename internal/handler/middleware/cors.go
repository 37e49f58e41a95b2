package middleware

import (
	"log/slog"
	"strings"

	"room-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware accepts wildcard origins such as https://*.example.com.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	wildcard := false
	for _, o := range cfg.AllowOrigins {
		if strings.Contains(o, "*") {
			wildcard = true
			break
		}
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "wildcard", wildcard)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		AllowWildcard:    wildcard,
		MaxAge:           cfg.MaxAge,
	})
}

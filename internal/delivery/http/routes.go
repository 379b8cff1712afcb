package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shoplens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	sessions := SessionMiddleware(SessionOptions{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.IsProduction(),
	})
	limited := RateLimitMiddleware(cfg.RateLimit.PerIP)

	// Browser form
	router.GET("/", sessions, handler.Index)
	router.POST("/analyze", sessions, limited, handler.SubmitForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/languages", handler.Languages)
		v1.POST("/analysis", limited, handler.Analyze)

		panel := v1.Group("/panel", sessions)
		{
			panel.GET("", handler.Panel)
			panel.DELETE("", handler.ResetPanel)
		}
	}

	return router
}

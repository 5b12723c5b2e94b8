package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/svatek/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.CORSOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	limiter := rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger)

	router.GET("/", handler.Page)
	router.POST("/refresh", limiter, handler.PageRefresh)
	router.POST("/alert/dismiss", handler.PageDismiss)
	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", handler.CurrentBoard)
		api.POST("/dashboard/refresh", limiter, handler.RefreshBoard)
		api.DELETE("/dashboard/alert", handler.DismissAlert)
		api.GET("/refreshes", handler.RefreshHistory)
		api.GET("/stats", handler.RefreshStats)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/mailer"
	metricsPkg "github.com/mac-cloud/StreamlineLabsWebsite/internal/metrics"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/repository"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	db       *gorm.DB
	repo     *repository.Repository
	notifier *mailer.Notifier
	metrics  *metricsPkg.Metrics
}

// NewHandlers creates new HTTP handlers
func NewHandlers(db *gorm.DB, repo *repository.Repository, notifier *mailer.Notifier, metrics *metricsPkg.Metrics) *Handlers {
	return &Handlers{
		db:       db,
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/contact", h.SubmitContact)

		api.GET("/messages", h.GetMessages)
		api.GET("/messages/unread-count", h.GetUnreadCount)
		api.GET("/messages/:id", h.GetMessage)
		api.PUT("/messages/:id/read", h.MarkMessageRead)

		api.GET("/health", h.HealthCheck)
	}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  "ok",
	}

	if err := h.db.Exec("SELECT 1").Error; err != nil {
		response.Status = "error"
		response.Database = "error"
		logrus.Errorf("Database health check failed: %v", err)
	}

	statusCode := http.StatusOK
	if response.Status == "error" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

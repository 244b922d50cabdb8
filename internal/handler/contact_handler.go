package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/model"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/validator"
)

const thankYouMessage = "Thank you for your message! We'll get back to you within 24 hours."

// SubmitContact handles contact form submissions: validate, persist,
// then notify. Notification is attempted only after the row is durable
// and its outcome never changes the response.
func (h *Handlers) SubmitContact(c *gin.Context) {
	h.metrics.SubmissionsReceived.Inc()

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.SubmissionsRejected.Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Errors: []validator.FieldError{{Field: "body", Message: "Invalid request body"}},
		})
		return
	}

	submission, fieldErrors := validator.ValidateSubmission(req.Name, req.Email, req.Message)
	if fieldErrors != nil {
		h.metrics.SubmissionsRejected.Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: fieldErrors})
		return
	}

	msg := model.ContactMessage{
		Name:      submission.Name,
		Email:     submission.Email,
		Message:   submission.Message,
		IPAddress: clientIP(c),
	}

	if err := h.repo.Create(&msg); err != nil {
		h.metrics.StorageFailures.Inc()
		logrus.WithError(err).Error("Failed to store contact message")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "storage_error",
			Message: "Something went wrong. Please try again later",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	h.metrics.SubmissionsStored.Inc()

	logrus.WithFields(logrus.Fields{
		"id":    msg.ID,
		"email": msg.Email,
	}).Info("Stored contact message")

	h.notifier.Notify(c.Request.Context(), &msg)

	c.JSON(http.StatusCreated, ContactResponse{
		Success: true,
		Message: thankYouMessage,
		ID:      msg.ID,
	})
}

// clientIP prefers the first X-Forwarded-For hop, matching how the site
// is deployed behind a reverse proxy.
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.ClientIP()
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/model"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/repository"
)

// GetMessages returns contact messages with pagination, newest first.
// Optional filters: is_read (true/false) and email (exact match).
func (h *Handlers) GetMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	opts := repository.ListOptions{
		Page:    page,
		PerPage: perPage,
		Email:   c.Query("email"),
	}

	if raw, ok := c.GetQuery("is_read"); ok {
		if isRead, err := strconv.ParseBool(raw); err == nil {
			opts.IsRead = &isRead
		}
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 || opts.PerPage > repository.MaxPerPage {
		opts.PerPage = repository.DefaultPerPage
	}

	messages, total, err := h.repo.List(opts)
	if err != nil {
		logrus.WithError(err).Error("Failed to list contact messages")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to fetch messages",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	responses := make([]ContactMessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, toMessageResponse(&msg))
	}

	pages := int((total + int64(opts.PerPage) - 1) / int64(opts.PerPage))

	c.JSON(http.StatusOK, MessageListResponse{
		Messages: responses,
		Total:    total,
		Pages:    pages,
		Page:     opts.Page,
		PerPage:  opts.PerPage,
	})
}

// GetMessage returns a single contact message
func (h *Handlers) GetMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, found, err := h.repo.GetByID(id)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch contact message")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to fetch message",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Message not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, toMessageResponse(msg))
}

// MarkMessageRead marks a contact message as read. Marking an already
// read message succeeds again.
func (h *Handlers) MarkMessageRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.repo.MarkRead(id)
	if err != nil {
		logrus.WithError(err).Error("Failed to mark message as read")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to mark message as read",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Message not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message marked as read"})
}

// GetUnreadCount returns the number of unread messages
func (h *Handlers) GetUnreadCount(c *gin.Context) {
	count, err := h.repo.CountUnread()
	if err != nil {
		logrus.WithError(err).Error("Failed to count unread messages")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to count unread messages",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	h.metrics.UnreadMessages.Set(float64(count))
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid message ID",
			Code:    http.StatusBadRequest,
		})
		return 0, false
	}
	return uint(id), true
}

func toMessageResponse(msg *model.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
		IsRead:    msg.IsRead,
		IPAddress: msg.IPAddress,
	}
}

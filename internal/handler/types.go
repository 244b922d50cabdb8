package handler

import (
	"time"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/validator"
)

// ContactRequest represents the contact form submission body
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse represents a successful contact form submission
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// ValidationErrorResponse carries per-field validation errors
type ValidationErrorResponse struct {
	Errors []validator.FieldError `json:"errors"`
}

// ContactMessageResponse represents a stored contact message
type ContactMessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
	IPAddress string    `json:"ip_address"`
}

// MessageListResponse represents one page of contact messages
type MessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
	Total    int64                    `json:"total"`
	Pages    int                      `json:"pages"`
	Page     int                      `json:"page"`
	PerPage  int                      `json:"per_page"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

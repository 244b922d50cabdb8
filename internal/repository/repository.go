package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/model"
)

const (
	// DefaultPerPage is the page size used when the caller does not ask for one.
	DefaultPerPage = 20
	// MaxPerPage caps the page size an admin client can request.
	MaxPerPage = 100
)

// ListOptions controls pagination and filtering of List.
type ListOptions struct {
	Page    int
	PerPage int
	// IsRead filters by read state when non-nil.
	IsRead *bool
	// Email filters by exact sender address when non-empty.
	Email string
}

// Repository provides access to stored contact messages.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository backed by the given database handle.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new contact message. The ID is assigned by the
// database's auto-increment, so concurrent inserts each get a distinct
// strictly increasing identifier.
func (r *Repository) Create(msg *model.ContactMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// List returns one page of messages, newest first, and the total count
// matching the filters. Page is 1-based; out-of-range pagination values
// fall back to sane defaults rather than erroring.
func (r *Repository) List(opts ListOptions) ([]model.ContactMessage, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 || opts.PerPage > MaxPerPage {
		opts.PerPage = DefaultPerPage
	}

	query := r.db.Model(&model.ContactMessage{})
	if opts.IsRead != nil {
		query = query.Where("is_read = ?", *opts.IsRead)
	}
	if opts.Email != "" {
		query = query.Where("email = ?", opts.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	offset := (opts.Page - 1) * opts.PerPage

	var messages []model.ContactMessage
	if err := query.Order("created_at DESC").Offset(offset).Limit(opts.PerPage).Find(&messages).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return messages, total, nil
}

// GetByID returns the message with the given id. The second return value
// is false when no such message exists.
func (r *Repository) GetByID(id uint) (*model.ContactMessage, bool, error) {
	var msg model.ContactMessage
	if err := r.db.First(&msg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to fetch contact message: %w", err)
	}
	return &msg, true, nil
}

// MarkRead sets is_read on the message with the given id. It returns
// false when the id does not exist and is idempotent for messages that
// are already read.
func (r *Repository) MarkRead(id uint) (bool, error) {
	result := r.db.Model(&model.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark message as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Update reports zero rows both for a missing id and for a row
		// already in the target state, so distinguish with a lookup.
		_, found, err := r.GetByID(id)
		if err != nil {
			return false, err
		}
		return found, nil
	}
	return true, nil
}

// CountUnread returns the number of messages not yet marked as read.
func (r *Repository) CountUnread() (int64, error) {
	var count int64
	if err := r.db.Model(&model.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

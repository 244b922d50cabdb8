package model

import "time"

// ContactMessage represents a submitted contact form message
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(100);not null;index"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	IsRead    bool      `json:"is_read" gorm:"not null;default:false;index"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(45)"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}

package models

import (
	"gorm.io/gorm"
)

const (
	NotificationConfirmation = "CONFIRMATION"
	NotificationCancellation = "CANCELLATION"
	NotificationUpdate       = "UPDATE"
	NotificationReminder     = "REMINDER"
)

type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index"`
	Title   string `gorm:"not null"`
	Message string `gorm:"type:text"`
	Type    string `gorm:"not null"`
	IsRead  bool   `gorm:"not null;default:false"`
	EventID *int64
}

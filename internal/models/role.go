package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleParticipant = "PARTICIPANT"
	RoleOrganizer   = "ORGANIZER"
	RoleAdmin       = "ADMIN"
)

type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegStatusRegistered = "registered"
	RegStatusCancelled  = "cancelled"
	RegStatusAttended   = "attended"
	RegStatusWaitlisted = "waitlisted"
)

func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegStatusRegistered, RegStatusCancelled, RegStatusAttended, RegStatusWaitlisted:
		return true
	}
	return false
}

// EventRegistrationModel: satu pendaftaran per (event, user).
type EventRegistrationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_event_registrations_event_user" json:"event_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_event_registrations_event_user" json:"user_id"`
	Status  string    `gorm:"type:varchar(20);not null;default:'registered'" json:"status"`

	RegisteredAt time.Time      `gorm:"autoCreateTime" json:"registered_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}

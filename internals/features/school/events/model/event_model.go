package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// EventModel merepresentasikan acara sekolah.
// NOTE: unique index (event_school_id, event_slug) dibuat via migration.
type EventModel struct {
	EventID          uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventSchoolID    uuid.UUID      `gorm:"column:event_school_id;type:uuid;not null;index:idx_events_school" json:"event_school_id"`
	EventTitle       string         `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventSlug        string         `gorm:"column:event_slug;type:varchar(255);not null" json:"event_slug"`
	EventDescription string         `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string         `gorm:"column:event_location;type:varchar(255)" json:"event_location"`
	EventStartAt     time.Time      `gorm:"column:event_start_at;not null" json:"event_start_at"`
	EventEndAt       *time.Time     `gorm:"column:event_end_at" json:"event_end_at,omitempty"`
	EventCapacity    int            `gorm:"column:event_capacity;not null;default:0" json:"event_capacity"` // 0 = tanpa batas
	EventAudience    pq.StringArray `gorm:"column:event_audience;type:text[]" json:"event_audience"`        // role yang boleh daftar

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"-"`
}

func (EventModel) TableName() string {
	return "events"
}

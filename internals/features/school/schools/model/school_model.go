package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID      uuid.UUID      `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolName    string         `gorm:"column:school_name;type:varchar(255);not null" json:"school_name"`
	SchoolSlug    string         `gorm:"column:school_slug;type:varchar(100);not null" json:"school_slug"`
	SchoolAddress string         `gorm:"column:school_address;type:text" json:"school_address"`
	SchoolCity    string         `gorm:"column:school_city;type:varchar(100)" json:"school_city"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;type:timestamptz;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;type:timestamptz;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;type:timestamptz;index" json:"school_deleted_at,omitempty"`

	// NOTE: unik slug (case-insensitive) dibuat lewat migration:
	//   CREATE UNIQUE INDEX ux_schools_slug_lower ON schools (LOWER(school_slug));
}

func (SchoolModel) TableName() string {
	return "schools"
}

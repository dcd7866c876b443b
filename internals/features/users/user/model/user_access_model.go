package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAccessModel adalah keanggotaan user pada sebuah sekolah
// (co_admin / counselor yang diberi akses oleh super_admin).
type UserAccessModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_access_user" json:"user_id"`
	SchoolID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_access_school" json:"school_id"`
	Role      string         `gorm:"type:varchar(20);not null" json:"role"`
	GrantedBy uuid.UUID      `gorm:"type:uuid;not null" json:"granted_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// NOTE: unik (user_id, school_id) dibuat lewat migration,
	// tidak bisa diekspresikan langsung via tag GORM.
}

func (UserAccessModel) TableName() string {
	return "user_access"
}

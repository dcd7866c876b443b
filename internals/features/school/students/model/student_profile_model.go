package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfileModel adalah perpanjangan data siswa
// (kelas/section) dari baris users yang generik.
type StudentProfileModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_student_profiles_user" json:"user_id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index:idx_student_profiles_school" json:"school_id"`
	Class    string    `gorm:"column:class;type:varchar(50);not null" json:"class"`
	Section  string    `gorm:"column:section;type:varchar(50);not null" json:"section"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicRecordModel menampung hasil import nilai akademik.
type AcademicRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID     uuid.UUID `gorm:"type:uuid;not null;index:idx_academic_records_school" json:"school_id"`
	StudentEmail string    `gorm:"type:varchar(255);not null" json:"student_email"`
	Subject      string    `gorm:"type:varchar(100);not null" json:"subject"`
	Term         string    `gorm:"type:varchar(50);not null" json:"term"`
	Marks        string    `gorm:"type:varchar(20);not null" json:"marks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AcademicRecordModel) TableName() string {
	return "academic_records"
}

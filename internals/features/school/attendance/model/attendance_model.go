package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// AttendanceRecordModel menyimpan satu tanda kehadiran per siswa
// per tanggal per mapel. Baris "present" ikut disimpan eksplisit.
type AttendanceRecordModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID         uuid.UUID `gorm:"type:uuid;not null;index:idx_student_attendance_school_date" json:"school_id"`
	StudentProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_student_attendance_profile" json:"student_profile_id"`
	AttendanceDate   time.Time `gorm:"type:date;not null;index:idx_student_attendance_school_date" json:"attendance_date"`
	Subject          string    `gorm:"type:varchar(100);not null;default:'general'" json:"subject"`
	Status           string    `gorm:"type:varchar(20);not null" json:"status"` // present | absent | late
	MarkedBy         uuid.UUID `gorm:"type:uuid;not null" json:"marked_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "student_attendance"
}

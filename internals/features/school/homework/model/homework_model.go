package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeMCQ  = "mcq"
	TypeViva = "viva"
)

func ValidHomeworkType(s string) bool {
	return s == TypeMCQ || s == TypeViva
}

// HomeworkAssignmentModel: tugas per kelas/section. Bentuk soal disimpan
// sebagai JSON (lihat service: MCQQuestion / VivaQuestion).
type HomeworkAssignmentModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_homework_assignments_school" json:"school_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Type        string         `gorm:"type:varchar(10);not null" json:"type"` // mcq | viva
	Class       string         `gorm:"column:class;type:varchar(50);not null" json:"class"`
	Section     string         `gorm:"column:section;type:varchar(50);not null" json:"section"`
	Subject     string         `gorm:"type:varchar(100);not null;default:'general'" json:"subject"`
	Questions   datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	Deadline    time.Time      `gorm:"not null" json:"deadline"`
	MaxMarks    float64        `gorm:"not null" json:"max_marks"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (HomeworkAssignmentModel) TableName() string {
	return "homework_assignments"
}

// HomeworkSubmissionModel: satu jawaban per (tugas, siswa).
// Score selalu 0–100; marks_obtained = score/100 × max_marks tugas.
type HomeworkSubmissionModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_homework_submissions_assignment_user" json:"assignment_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_homework_submissions_assignment_user" json:"user_id"`
	Answers       datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	Score         float64        `gorm:"not null" json:"score"`
	MarksObtained float64        `gorm:"not null" json:"marks_obtained"`
	SubmittedAt   time.Time      `gorm:"autoCreateTime" json:"submitted_at"`
}

func (HomeworkSubmissionModel) TableName() string {
	return "homework_submissions"
}

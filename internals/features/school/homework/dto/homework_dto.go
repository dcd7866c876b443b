package dto

import (
	"encoding/json"
	"time"

	"schoolku_backend/internals/features/school/homework/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// 🔹 Request membuat tugas
type HomeworkRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=255"`
	Description string          `json:"description"`
	Type        string          `json:"type" validate:"required,oneof=mcq viva"`
	Class       string          `json:"class" validate:"required"`
	Section     string          `json:"section" validate:"required"`
	Subject     string          `json:"subject"`
	Questions   json.RawMessage `json:"questions" validate:"required"`
	Deadline    time.Time       `json:"deadline" validate:"required"`
	MaxMarks    float64         `json:"max_marks" validate:"required,gt=0"`
}

// 🔹 Request pengumpulan jawaban (question id → jawaban)
type SubmitHomeworkRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}

// 🔹 Response tugas
type HomeworkResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Class       string          `json:"class"`
	Section     string          `json:"section"`
	Subject     string          `json:"subject"`
	Questions   json.RawMessage `json:"questions"`
	Deadline    time.Time       `json:"deadline"`
	MaxMarks    float64         `json:"max_marks"`
	CreatedAt   time.Time       `json:"created_at"`
}

// 🔹 Response hasil pengumpulan
type SubmissionResponse struct {
	ID            uuid.UUID `json:"id"`
	AssignmentID  uuid.UUID `json:"assignment_id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	Score         float64   `json:"score"`
	MarksObtained float64   `json:"marks_obtained"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// 🔄 Konversi dari request → model
func (r *HomeworkRequest) ToModel(schoolID, createdBy uuid.UUID) *model.HomeworkAssignmentModel {
	subject := r.Subject
	if subject == "" {
		subject = "general"
	}
	return &model.HomeworkAssignmentModel{
		SchoolID:    schoolID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Class:       r.Class,
		Section:     r.Section,
		Subject:     subject,
		Questions:   datatypes.JSON(r.Questions),
		Deadline:    r.Deadline,
		MaxMarks:    r.MaxMarks,
		CreatedBy:   createdBy,
	}
}

// 🔄 Konversi dari model → response
func ToHomeworkResponse(m *model.HomeworkAssignmentModel) HomeworkResponse {
	return HomeworkResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		Class:       m.Class,
		Section:     m.Section,
		Subject:     m.Subject,
		Questions:   json.RawMessage(m.Questions),
		Deadline:    m.Deadline,
		MaxMarks:    m.MaxMarks,
		CreatedAt:   m.CreatedAt,
	}
}

func ToSubmissionResponse(m *model.HomeworkSubmissionModel, userName string) SubmissionResponse {
	return SubmissionResponse{
		ID:            m.ID,
		AssignmentID:  m.AssignmentID,
		UserID:        m.UserID,
		UserName:      userName,
		Score:         m.Score,
		MarksObtained: m.MarksObtained,
		SubmittedAt:   m.SubmittedAt,
	}
}

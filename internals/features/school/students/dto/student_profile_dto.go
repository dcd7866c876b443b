package dto

import (
	"schoolku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
)

// 🔹 Request membuat/menempatkan profil siswa
type StudentProfileRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Class   string    `json:"class" validate:"required"`
	Section string    `json:"section" validate:"required"`
}

// 🔹 Request pindah kelas/section
type StudentProfileUpdateRequest struct {
	Class   *string `json:"class,omitempty"`
	Section *string `json:"section,omitempty"`
}

// 🔹 Response profil siswa (plus nama dari join users)
type StudentProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name,omitempty"`
	Class    string    `json:"class"`
	Section  string    `json:"section"`
}

// 🔄 Konversi dari request → model
func (r *StudentProfileRequest) ToModel(schoolID uuid.UUID) *model.StudentProfileModel {
	return &model.StudentProfileModel{
		UserID:   r.UserID,
		SchoolID: schoolID,
		Class:    r.Class,
		Section:  r.Section,
	}
}

// 🔄 Konversi dari model → response
func ToStudentProfileResponse(m *model.StudentProfileModel, fullName string) StudentProfileResponse {
	return StudentProfileResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		FullName: fullName,
		Class:    m.Class,
		Section:  m.Section,
	}
}

package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/schools/model"

	"github.com/google/uuid"
)

// 🔹 Request untuk membuat sekolah
type SchoolRequest struct {
	SchoolName    string `json:"school_name" validate:"required,min=3,max=255"`
	SchoolAddress string `json:"school_address"`
	SchoolCity    string `json:"school_city"`
}

// 🔹 Request update parsial
type SchoolUpdateRequest struct {
	SchoolName    *string `json:"school_name,omitempty"`
	SchoolAddress *string `json:"school_address,omitempty"`
	SchoolCity    *string `json:"school_city,omitempty"`
}

// 🔹 Response sekolah
type SchoolResponse struct {
	SchoolID      uuid.UUID `json:"school_id"`
	SchoolName    string    `json:"school_name"`
	SchoolSlug    string    `json:"school_slug"`
	SchoolAddress string    `json:"school_address"`
	SchoolCity    string    `json:"school_city"`
	CreatedAt     string    `json:"created_at"`
}

// 🔄 Fungsi bantu generate slug dari nama
func GenerateSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// 🔄 Konversi dari request → model
func (r *SchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:    r.SchoolName,
		SchoolSlug:    GenerateSlug(r.SchoolName),
		SchoolAddress: r.SchoolAddress,
		SchoolCity:    r.SchoolCity,
	}
}

// 🔄 Konversi dari model → response
func ToSchoolResponse(m *model.SchoolModel) *SchoolResponse {
	return &SchoolResponse{
		SchoolID:      m.SchoolID,
		SchoolName:    m.SchoolName,
		SchoolSlug:    m.SchoolSlug,
		SchoolAddress: m.SchoolAddress,
		SchoolCity:    m.SchoolCity,
		CreatedAt:     m.SchoolCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToSchoolResponseList(models []model.SchoolModel) []SchoolResponse {
	result := make([]SchoolResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToSchoolResponse(&m))
	}
	return result
}

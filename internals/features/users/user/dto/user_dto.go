package dto

import (
	"schoolku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// 🔹 Request update user oleh admin
type UserUpdateRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// 🔹 Request pemberian akses sekolah (co_admin / counselor)
type GrantAccessRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=co_admin counselor"`
}

// 🔹 Response user untuk listing admin
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	SchoolID  *uuid.UUID `json:"school_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt string     `json:"created_at"`
}

// 🔄 Konversi dari model → response
func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		SchoolID:  m.SchoolID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for _, m := range models {
		result = append(result, ToUserResponse(&m))
	}
	return result
}

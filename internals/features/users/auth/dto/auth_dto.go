package dto

import (
	userModel "schoolku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// 🔹 Request registrasi (OTP dikirim setelah ini)
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// 🔹 Request verifikasi OTP registrasi
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// 🔹 Request login email+password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Request login Google (ID token dari client)
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🔹 Response login / refresh
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	FullName string     `json:"full_name"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	SchoolID *uuid.UUID `json:"school_id,omitempty"`
}

// 🔄 Konversi dari request → model
func (r *RegisterRequest) ToModel(hashedPassword string) *userModel.UserModel {
	return &userModel.UserModel{
		FullName: r.FullName,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     r.Role,
		IsActive: false, // aktif setelah verifikasi OTP
	}
}

// 🔄 Konversi dari model → response
func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		SchoolID: u.SchoolID,
	}
}

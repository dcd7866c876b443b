// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	database "schoolku_backend/internals/databases"
	authModel "schoolku_backend/internals/features/users/auth/model"
	"schoolku_backend/internals/features/users/auth/dto"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, validate: validator.New()}
}

/* ===================== REGISTER + OTP ===================== */

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !constants.ValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}
	if req.Role == constants.RoleSuperAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Role super_admin tidak bisa didaftarkan sendiri")
	}

	// Cek email sudah terpakai
	var cnt int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("email = ?", strings.ToLower(req.Email)).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	req.Email = strings.ToLower(req.Email)
	newUser := req.ToModel(hashed)
	if err := ctrl.DB.Create(newUser).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	// Kirim OTP verifikasi
	code, err := authService.GenerateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat OTP")
	}
	if err := authService.StoreOTP(c.UserContext(), database.Redis, newUser.Email, code); err != nil {
		log.Printf("[ERROR] Gagal menyimpan OTP: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan OTP")
	}
	// TODO: kirim OTP via provider email; sementara hanya tercatat di log server
	log.Printf("[INFO] OTP registrasi untuk %s: %s", newUser.Email, code)

	return helper.JsonCreated(c, "Registrasi berhasil, silakan verifikasi OTP", dto.ToUserResponse(newUser))
}

// POST /api/auth/verify-otp
func (ctrl *AuthController) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Email = strings.ToLower(req.Email)
	if err := authService.VerifyOTP(c.UserContext(), database.Redis, req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, authService.ErrOTPExpired):
			return helper.JsonError(c, fiber.StatusBadRequest, "OTP kadaluarsa, silakan daftar ulang")
		case errors.Is(err, authService.ErrOTPMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode OTP salah")
		case errors.Is(err, authService.ErrOTPTooMany):
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Terlalu banyak percobaan OTP")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi OTP")
		}
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("email = ?", req.Email).
		Update("is_active", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan akun")
	}

	return helper.JsonOK(c, "Akun berhasil diverifikasi, silakan login", nil)
}

/* ===================== LOGIN ===================== */

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !authService.CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun belum diverifikasi atau dinonaktifkan")
	}

	return ctrl.issueTokens(c, &user, "Login berhasil")
}

// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = ctrl.DB.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User belum ada → buat baru (role default student, onboarding menyusul)
		dummy, err := authService.HashPassword(googleID + time.Now().String())
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user Google")
		}
		user = userModel.UserModel{
			FullName: name,
			Email:    email,
			Password: dummy,
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user Google")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa user")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	return ctrl.issueTokens(c, &user, "Login Google berhasil")
}

/* ===================== REFRESH / LOGOUT ===================== */

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := authService.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return ctrl.issueTokens(c, &user, "Token diperbarui")
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}
	tokenString := fields[1]

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: authService.AccessTokenExpiry(tokenString),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan blacklist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(&user))
}

/* ===================== internal ===================== */

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user *userModel.UserModel, message string) error {
	now := time.Now().UTC()
	access, err := authService.CreateAccessToken(user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := authService.CreateRefreshToken(user.ID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  now.Add(authService.RefreshTokenTTL),
	})

	return helper.JsonOK(c, message, dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(user),
	})
}

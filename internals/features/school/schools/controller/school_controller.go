// internals/features/school/schools/controller/school_controller.go
package controller

import (
	"log"
	"strings"

	"schoolku_backend/internals/features/school/schools/dto"
	"schoolku_backend/internals/features/school/schools/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, validate: validator.New()}
}

// 🟢 POST /api/a/schools
// Super admin membuat sekolah; school_id miliknya otomatis menempel (onboarding).
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	newSchool := req.ToModel()

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(newSchool).Error; err != nil {
		tx.Rollback()
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama sekolah sudah terdaftar")
		}
		log.Printf("[ERROR] Gagal menyimpan sekolah: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sekolah")
	}

	if err := tx.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("school_id", newSchool.SchoolID).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghubungkan akun ke sekolah")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonCreated(c, "Sekolah berhasil dibuat", dto.ToSchoolResponse(newSchool))
}

// 🟢 GET /api/u/schools/:slug
func (ctrl *SchoolController) GetSchoolBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_slug = ?", slug).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.ToSchoolResponse(&school))
}

// 🟡 PATCH /api/a/schools
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	var req dto.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if req.SchoolName != nil {
		updates["school_name"] = *req.SchoolName
		updates["school_slug"] = dto.GenerateSlug(*req.SchoolName)
	}
	if req.SchoolAddress != nil {
		updates["school_address"] = *req.SchoolAddress
	}
	if req.SchoolCity != nil {
		updates["school_city"] = *req.SchoolCity
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&school).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui sekolah")
	}
	if err := ctrl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data sekolah terbaru")
	}
	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", dto.ToSchoolResponse(&school))
}

// 🟢 POST /api/u/schools/join
// Onboarding: user menempelkan dirinya ke sekolah (body: { "school_id": "..." }).
func (ctrl *SchoolController) JoinSchool(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	type Request struct {
		SchoolID uuid.UUID `json:"school_id"`
	}
	var body Request
	if err := c.BodyParser(&body); err != nil || body.SchoolID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "School ID tidak valid")
	}

	var cnt int64
	if err := ctrl.DB.Model(&model.SchoolModel{}).
		Where("school_id = ?", body.SchoolID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa sekolah")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("school_id", body.SchoolID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghubungkan akun ke sekolah")
	}

	return helper.JsonOK(c, "Berhasil bergabung ke sekolah. Silakan login ulang untuk memperbarui token.", nil)
}

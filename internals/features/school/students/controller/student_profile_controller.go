// internals/features/school/students/controller/student_profile_controller.go
package controller

import (
	"log"
	"strings"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentProfileController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewStudentProfileController(db *gorm.DB) *StudentProfileController {
	return &StudentProfileController{DB: db, validate: validator.New()}
}

// 🟢 POST /api/a/students
// Menempatkan user bertipe student ke kelas/section.
func (ctrl *StudentProfileController) CreateStudentProfile(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.StudentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// User harus ada & satu sekolah dengan admin
	var user userModel.UserModel
	if err := ctrl.DB.
		Where("id = ? AND school_id = ?", req.UserID, schoolID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan di sekolah ini")
	}

	profile := req.ToModel(schoolID)
	if err := ctrl.DB.Create(profile).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Profil siswa untuk user ini sudah ada")
		}
		log.Printf("[ERROR] Gagal menyimpan profil siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil siswa")
	}

	return helper.JsonCreated(c, "Profil siswa berhasil dibuat", dto.ToStudentProfileResponse(profile, user.FullName))
}

// 🟢 GET /api/a/students?class=&section=&page=&per_page=
func (ctrl *StudentProfileController) GetStudentProfiles(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.StudentProfileModel{}).Where("school_id = ?", schoolID)
	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("section = ?", section)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data siswa")
	}

	var profiles []model.StudentProfileModel
	if err := q.Order("class ASC, section ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	// Ambil nama dalam satu query
	userIDs := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}
	names := map[uuid.UUID]string{}
	if len(userIDs) > 0 {
		var users []userModel.UserModel
		if err := ctrl.DB.Select("id", "full_name").
			Where("id IN ?", userIDs).
			Find(&users).Error; err == nil {
			for _, u := range users {
				names[u.ID] = u.FullName
			}
		}
	}

	resp := make([]dto.StudentProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, dto.ToStudentProfileResponse(&profiles[i], names[profiles[i].UserID]))
	}

	return helper.JsonList(c, "Daftar siswa", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/students/:id
// Pindah kelas/section.
func (ctrl *StudentProfileController) UpdateStudentProfile(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID profil tidak valid")
	}

	var profile model.StudentProfileModel
	if err := ctrl.DB.
		Where("id = ? AND school_id = ?", profileID, schoolID).
		First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}

	var req dto.StudentProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if req.Class != nil {
		updates["class"] = *req.Class
	}
	if req.Section != nil {
		updates["section"] = *req.Section
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&profile).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil siswa")
	}

	var fullName string
	ctrl.DB.Model(&userModel.UserModel{}).
		Select("full_name").
		Where("id = ?", profile.UserID).
		Scan(&fullName)

	return helper.JsonUpdated(c, "Profil siswa berhasil diperbarui", dto.ToStudentProfileResponse(&profile, fullName))
}

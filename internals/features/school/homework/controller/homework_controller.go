// internals/features/school/homework/controller/homework_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"schoolku_backend/internals/features/school/homework/dto"
	"schoolku_backend/internals/features/school/homework/model"
	"schoolku_backend/internals/features/school/homework/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HomeworkController struct {
	DB        *gorm.DB
	validate  *validator.Validate
	evaluator service.VivaEvaluator
}

func NewHomeworkController(db *gorm.DB) *HomeworkController {
	return &HomeworkController{
		DB:        db,
		validate:  validator.New(),
		evaluator: service.LengthHeuristicEvaluator{},
	}
}

/* ===================== CREATE ===================== */

// 🟢 POST /api/a/homework
func (ctrl *HomeworkController) CreateAssignment(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.HomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Bentuk soal harus cocok dengan tipe tugas
	switch req.Type {
	case model.TypeMCQ:
		var questions []service.MCQQuestion
		if err := json.Unmarshal(req.Questions, &questions); err != nil || len(questions) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format soal MCQ tidak valid")
		}
	case model.TypeViva:
		var questions []service.VivaQuestion
		if err := json.Unmarshal(req.Questions, &questions); err != nil || len(questions) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format soal viva tidak valid")
		}
	}

	assignment := req.ToModel(schoolID, userID)
	if err := ctrl.DB.Create(assignment).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan tugas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tugas")
	}

	return helper.JsonCreated(c, "Tugas berhasil dibuat", dto.ToHomeworkResponse(assignment))
}

/* ===================== LIST ===================== */

// 🟢 GET /api/u/homework?class=&section=&type=
func (ctrl *HomeworkController) GetAssignments(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.HomeworkAssignmentModel{}).Where("school_id = ?", schoolID)
	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("section = ?", section)
	}
	if hwType := c.Query("type"); hwType != "" {
		q = q.Where("type = ?", hwType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tugas")
	}

	var assignments []model.HomeworkAssignmentModel
	if err := q.Order("deadline ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	resp := make([]dto.HomeworkResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, dto.ToHomeworkResponse(&assignments[i]))
	}
	return helper.JsonList(c, "Daftar tugas", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== SUBMIT ===================== */

// 🟢 POST /api/u/homework/:id/submit
// Jawaban dinilai otomatis saat masuk; lewat tenggat → 422.
func (ctrl *HomeworkController) SubmitHomework(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var req dto.SubmitHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var assignment model.HomeworkAssignmentModel
	if err := ctrl.DB.
		Where("id = ? AND school_id = ?", assignmentID, schoolID).
		First(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}

	if time.Now().After(assignment.Deadline) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tenggat pengumpulan sudah lewat")
	}

	var score, marksObtained float64
	switch assignment.Type {
	case model.TypeMCQ:
		var questions []service.MCQQuestion
		if err := json.Unmarshal(assignment.Questions, &questions); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Soal tugas tidak bisa dibaca")
		}
		score, _ = service.ScoreMCQ(questions, req.Answers)
		marksObtained = service.MarksFromScore(score, assignment.MaxMarks)
	case model.TypeViva:
		var questions []service.VivaQuestion
		if err := json.Unmarshal(assignment.Questions, &questions); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Soal tugas tidak bisa dibaca")
		}
		score, marksObtained = ctrl.evaluator.Evaluate(questions, req.Answers)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tipe tugas tidak dikenal")
	}

	rawAnswers, err := json.Marshal(req.Answers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban tidak bisa dibaca")
	}

	submission := &model.HomeworkSubmissionModel{
		AssignmentID:  assignment.ID,
		UserID:        userID,
		Answers:       datatypes.JSON(rawAnswers),
		Score:         score,
		MarksObtained: marksObtained,
	}
	if err := ctrl.DB.Create(submission).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Tugas sudah pernah dikumpulkan")
		}
		log.Printf("[ERROR] Gagal menyimpan pengumpulan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumpulan")
	}

	return helper.JsonCreated(c, "Jawaban berhasil dikumpulkan", dto.ToSubmissionResponse(submission, ""))
}

/* ===================== SUBMISSIONS ===================== */

// 🟢 GET /api/a/homework/:id/submissions
func (ctrl *HomeworkController) GetSubmissions(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var assignment model.HomeworkAssignmentModel
	if err := ctrl.DB.
		Where("id = ? AND school_id = ?", assignmentID, schoolID).
		First(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctrl.DB.Model(&model.HomeworkSubmissionModel{}).
		Where("assignment_id = ?", assignmentID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumpulan")
	}

	var submissions []model.HomeworkSubmissionModel
	if err := ctrl.DB.
		Where("assignment_id = ?", assignmentID).
		Order("submitted_at ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumpulan")
	}

	userIDs := make([]uuid.UUID, 0, len(submissions))
	for _, s := range submissions {
		userIDs = append(userIDs, s.UserID)
	}
	names := map[uuid.UUID]string{}
	if len(userIDs) > 0 {
		var users []userModel.UserModel
		if err := ctrl.DB.Select("id", "full_name").Where("id IN ?", userIDs).Find(&users).Error; err == nil {
			for _, u := range users {
				names[u.ID] = u.FullName
			}
		}
	}

	resp := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		resp = append(resp, dto.ToSubmissionResponse(&submissions[i], names[submissions[i].UserID]))
	}
	return helper.JsonList(c, "Daftar pengumpulan", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

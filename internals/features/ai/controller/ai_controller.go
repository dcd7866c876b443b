// internals/features/ai/controller/ai_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/ai/client"
	"schoolku_backend/internals/features/ai/dto"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const systemPrompt = "You are an assistant for a school management platform. " +
	"Always answer with a single valid JSON object matching the requested shape, " +
	"with no extra commentary."

type AIController struct {
	ai       *client.Client
	validate *validator.Validate
}

func NewAIController() *AIController {
	return &AIController{
		ai:       client.New(configs.AIBaseURL, configs.AIAPIKey, configs.AIModel),
		validate: validator.New(),
	}
}

/* ===================== IDEA GENERATOR ===================== */

// 🟢 POST /api/a/generate/ideas
func (ctrl *AIController) GenerateIdeas(c *fiber.Ctx) error {
	var req dto.IdeaGeneratorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Count == 0 {
		req.Count = 5
	}
	audience := req.Audience
	if audience == "" {
		audience = "siswa sekolah menengah"
	}

	prompt := fmt.Sprintf(
		`Buat %d ide kegiatan belajar tentang %q untuk %s. Jawab sebagai JSON: {"ideas":[{"title":"...","description":"..."}]}`,
		req.Count, req.Topic, audience,
	)

	var out dto.IdeaListResponse
	if !ctrl.generateInto(c, prompt, 1500, &out) {
		return nil
	}
	return helper.JsonOK(c, "Ide berhasil dibuat", out)
}

/* ===================== QUIZ GENERATOR ===================== */

// 🟢 POST /api/a/generate/quiz
func (ctrl *AIController) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.QuizGeneratorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Count == 0 {
		req.Count = 5
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	prompt := fmt.Sprintf(
		`Buat %d soal pilihan ganda %s tingkat %s tentang %q, 4 opsi per soal. Jawab sebagai JSON: {"questions":[{"question":"...","options":["..."],"correct_answer":"..."}]}`,
		req.Count, req.Subject, difficulty, req.Topic,
	)

	var out dto.QuizResponse
	if !ctrl.generateInto(c, prompt, 2000, &out) {
		return nil
	}
	return helper.JsonOK(c, "Kuis berhasil dibuat", out)
}

/* ===================== TEACHER PREP ===================== */

// 🟢 POST /api/a/generate/teacher-prep
func (ctrl *AIController) GenerateTeacherPrep(c *fiber.Ctx) error {
	var req dto.TeacherPrepRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	grade := req.Grade
	if grade == "" {
		grade = "umum"
	}

	prompt := fmt.Sprintf(
		`Buat daftar pertanyaan persiapan mengajar %s topik %q untuk jenjang %s, beserta jawaban singkatnya. Jawab sebagai JSON: {"questions":[{"question":"...","answer":"..."}]}`,
		req.Subject, req.Topic, grade,
	)

	var out dto.TeacherPrepResponse
	if !ctrl.generateInto(c, prompt, 2000, &out) {
		return nil
	}
	return helper.JsonOK(c, "Materi persiapan berhasil dibuat", out)
}

/* ===================== CODE TUTOR ===================== */

// 🟢 POST /api/a/generate/code-tutor
func (ctrl *AIController) GenerateCodeTutor(c *fiber.Ctx) error {
	var req dto.CodeTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	prompt := fmt.Sprintf(
		`Jelaskan pertanyaan pemrograman %s berikut untuk siswa: %q. Jawab sebagai JSON: {"explanation":"...","example_code":"..."}`,
		req.Language, req.Question,
	)

	var out dto.CodeTutorResponse
	if !ctrl.generateInto(c, prompt, 1500, &out) {
		return nil
	}
	return helper.JsonOK(c, "Penjelasan berhasil dibuat", out)
}

/* ===================== SHARED ===================== */

// generateInto memanggil model dan parse hasilnya ke out. Hasil yang
// tidak bisa diparse dianggap kegagalan upstream (502). Kalau return
// false, response error sudah ditulis.
func (ctrl *AIController) generateInto(c *fiber.Ctx, prompt string, maxTokens int, out any) bool {
	content, err := ctrl.ai.GenerateJSON(c.Context(), systemPrompt, prompt, maxTokens)
	if err != nil {
		log.Printf("[ERROR] Panggilan AI gagal: %v", err)
		helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghasilkan konten")
		return false
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		log.Printf("[ERROR] Jawaban AI bukan JSON yang diharapkan: %v", err)
		helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghasilkan konten")
		return false
	}
	return true
}

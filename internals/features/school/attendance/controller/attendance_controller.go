// internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"encoding/json"
	"log"
	"time"

	"schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/school/attendance/dto"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/attendance/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, validate: validator.New()}
}

/* ===================== SAVE ===================== */

// 🟢 POST /api/a/attendance
// Simpan absensi satu kelas/section untuk satu tanggal.
// Semantik: hapus dulu semua baris kelas itu di tanggal itu, lalu tulis
// ulang dari payload. Dipanggil dua kali dengan payload sama → hasil sama.
func (ctrl *AttendanceController) SaveAttendance(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	markerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	// Semua profil kelas/section ini; juga dipakai sebagai scope delete.
	var classProfiles []studentModel.StudentProfileModel
	if err := ctrl.DB.
		Where("school_id = ? AND class = ? AND section = ?", schoolID, req.Class, req.Section).
		Find(&classProfiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	classProfileIDs := make([]uuid.UUID, 0, len(classProfiles))
	inClass := make(map[uuid.UUID]bool, len(classProfiles))
	for _, p := range classProfiles {
		classProfileIDs = append(classProfileIDs, p.ID)
		inClass[p.ID] = true
	}

	entries := make([]service.SaveEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		if !inClass[e.StudentProfileID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ada siswa yang bukan anggota kelas ini")
		}
		entries = append(entries, service.SaveEntry{
			StudentProfileID: e.StudentProfileID,
			Status:           e.Status,
		})
	}

	records := service.BuildRecords(schoolID, date, req.Subject, markerID, entries)

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

	if len(classProfileIDs) > 0 {
		if err := tx.
			Where("school_id = ? AND attendance_date = ? AND student_profile_id IN ?",
				schoolID, date, classProfileIDs).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			tx.Rollback()
			log.Printf("[ERROR] Gagal menghapus absensi lama: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	}

	if len(records) > 0 {
		if err := tx.Create(&records).Error; err != nil {
			tx.Rollback()
			log.Printf("[ERROR] Gagal menyimpan absensi: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonOK(c, "Absensi berhasil disimpan", fiber.Map{
		"date":  req.Date,
		"saved": len(records),
	})
}

/* ===================== SESSIONS ===================== */

// 🟢 GET /api/a/attendance/sessions?date=&policy=
func (ctrl *AttendanceController) GetSessions(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("school_id = ?", schoolID)
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		q = q.Where("attendance_date = ?", date)
	}

	var rows []attendanceModel.AttendanceRecordModel
	if err := q.Order("attendance_date DESC, created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	profiles, err := ctrl.profileLookup(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil siswa")
	}

	policy := service.ResolveMarkerPolicy(c.Query("policy"))
	sessions := service.BuildSessions(rows, profiles, policy)

	markerIDs := make([]uuid.UUID, 0, len(sessions))
	for _, s := range sessions {
		markerIDs = append(markerIDs, s.MarkedBy)
	}
	markerNames := ctrl.userNames(markerIDs)

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s, markerNames))
	}
	return helper.JsonOK(c, "Daftar sesi absensi", resp)
}

/* ===================== ALERTS ===================== */

// 🟢 GET /api/a/attendance/alerts
// Hitung segar; kalau DB bermasalah, pakai snapshot harian dari redis.
func (ctrl *AttendanceController) GetAbsenteeAlerts(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	today := time.Now()
	alerts, freshErr := ctrl.computeAlerts(schoolID, today)
	if freshErr == nil {
		names := ctrl.alertStudentNames(alerts)
		return helper.JsonOK(c, "Daftar peringatan absensi", dto.AbsenteeAlertListResponse{
			Alerts:      dto.ToAbsenteeAlertResponses(alerts, names),
			GeneratedAt: today,
			Source:      "fresh",
		})
	}
	log.Printf("[ERROR] Komputasi alert gagal, mencoba snapshot: %v", freshErr)

	raw, err := database.Redis.Get(c.Context(), service.AlertSnapshotKey(schoolID)).Result()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peringatan absensi")
	}
	var snap service.AlertSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peringatan absensi")
	}
	names := ctrl.alertStudentNames(snap.Alerts)
	return helper.JsonOK(c, "Daftar peringatan absensi (snapshot)", dto.AbsenteeAlertListResponse{
		Alerts:      dto.ToAbsenteeAlertResponses(snap.Alerts, names),
		GeneratedAt: snap.GeneratedAt,
		Source:      "snapshot",
	})
}

func (ctrl *AttendanceController) computeAlerts(schoolID uuid.UUID, today time.Time) ([]service.AbsenteeAlert, error) {
	windowStart := today.AddDate(0, 0, -service.AlertWindowDays)

	var rows []attendanceModel.AttendanceRecordModel
	if err := ctrl.DB.
		Where("school_id = ? AND attendance_date >= ?", schoolID, windowStart.Format("2006-01-02")).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	profiles, err := ctrl.profileLookup(schoolID)
	if err != nil {
		return nil, err
	}

	sessions := service.BuildSessions(rows, profiles, service.MarkerEarliestWins)
	return service.AbsenteeAlerts(sessions, today), nil
}

/* ===================== LOOKUPS ===================== */

func (ctrl *AttendanceController) profileLookup(schoolID uuid.UUID) (map[uuid.UUID]studentModel.StudentProfileModel, error) {
	var profiles []studentModel.StudentProfileModel
	if err := ctrl.DB.Where("school_id = ?", schoolID).Find(&profiles).Error; err != nil {
		return nil, err
	}
	lookup := make(map[uuid.UUID]studentModel.StudentProfileModel, len(profiles))
	for _, p := range profiles {
		lookup[p.ID] = p
	}
	return lookup, nil
}

func (ctrl *AttendanceController) userNames(ids []uuid.UUID) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	if len(ids) == 0 {
		return names
	}
	var users []userModel.UserModel
	if err := ctrl.DB.Select("id", "full_name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil nama user: %v", err)
		return names
	}
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names
}

func (ctrl *AttendanceController) alertStudentNames(alerts []service.AbsenteeAlert) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.UserID)
	}
	return ctrl.userNames(ids)
}

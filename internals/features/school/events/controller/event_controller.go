// internals/features/school/events/controller/event_controller.go
package controller

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"schoolku_backend/internals/features/school/events/dto"
	"schoolku_backend/internals/features/school/events/model"
	"schoolku_backend/internals/features/school/events/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EventController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, validate: validator.New()}
}

/* ===================== CRUD ===================== */

// 🟢 POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	event := req.ToModel(schoolID)
	if err := ctrl.DB.Create(event).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Acara dengan judul serupa sudah ada")
		}
		log.Printf("[ERROR] Gagal menyimpan acara: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan acara")
	}

	return helper.JsonCreated(c, "Acara berhasil dibuat", dto.ToEventResponse(event))
}

// 🟢 GET /api/u/events
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.EventModel{}).Where("event_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung acara")
	}

	var events []model.EventModel
	if err := q.Order("event_start_at ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil acara")
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}
	return helper.JsonList(c, "Daftar acara", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/events/:slug
func (ctrl *EventController) GetEventBySlug(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.DB.
		Where("event_school_id = ? AND event_slug = ?", schoolID, c.Params("slug")).
		First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Acara tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.ToEventResponse(&event))
}

// 🟡 PATCH /api/a/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
		updates["event_slug"] = dto.GenerateEventSlug(*req.EventTitle)
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventStartAt != nil {
		updates["event_start_at"] = *req.EventStartAt
	}
	if req.EventEndAt != nil {
		updates["event_end_at"] = *req.EventEndAt
	}
	if req.EventCapacity != nil {
		updates["event_capacity"] = *req.EventCapacity
	}
	if req.EventAudience != nil {
		updates["event_audience"] = pq.StringArray(req.EventAudience)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(event).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui acara")
	}
	return helper.JsonUpdated(c, "Acara berhasil diperbarui", dto.ToEventResponse(event))
}

// 🔴 DELETE /api/a/events/:id
// Soft delete acara beserta pendaftarannya dalam satu transaksi.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

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

	if err := tx.Where("event_id = ?", event.EventID).
		Delete(&model.EventRegistrationModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pendaftaran acara")
	}
	if err := tx.Delete(event).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus acara")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonDeleted(c, "Acara berhasil dihapus", fiber.Map{"event_id": event.EventID})
}

/* ===================== REGISTRATION ===================== */

// 🟢 POST /api/u/events/:id/register
// Kuota penuh → masuk waitlist. Pendaftaran cancelled bisa diaktifkan lagi.
func (ctrl *EventController) RegisterForEvent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

	if len(event.EventAudience) > 0 {
		allowed := false
		for _, r := range event.EventAudience {
			if r == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return helper.JsonError(c, fiber.StatusForbidden, "Acara ini tidak terbuka untuk role Anda")
		}
	}

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

	var existing model.EventRegistrationModel
	err = tx.Where("event_id = ? AND user_id = ?", event.EventID, userID).First(&existing).Error
	if err == nil && existing.Status != model.RegStatusCancelled {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, "Anda sudah terdaftar di acara ini")
	}

	var activeCount int64
	if err := tx.Model(&model.EventRegistrationModel{}).
		Where("event_id = ? AND status IN ?", event.EventID, service.ActiveStatuses).
		Count(&activeCount).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kuota acara")
	}

	status := service.DecideRegistrationStatus(event.EventCapacity, activeCount)

	var registration *model.EventRegistrationModel
	if existing.ID != uuid.Nil {
		existing.Status = status
		if err := tx.Save(&existing).Error; err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
		}
		registration = &existing
	} else {
		registration = &model.EventRegistrationModel{
			EventID: event.EventID,
			UserID:  userID,
			Status:  status,
		}
		if err := tx.Create(registration).Error; err != nil {
			tx.Rollback()
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Anda sudah terdaftar di acara ini")
			}
			log.Printf("[ERROR] Gagal menyimpan pendaftaran: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	message := "Berhasil mendaftar acara"
	if status == model.RegStatusWaitlisted {
		message = "Kuota penuh, Anda masuk daftar tunggu"
	}
	return helper.JsonCreated(c, message, dto.ToRegistrationResponse(registration, ""))
}

// 🟡 POST /api/u/events/:id/cancel
func (ctrl *EventController) CancelRegistration(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

	var registration model.EventRegistrationModel
	if err := ctrl.DB.
		Where("event_id = ? AND user_id = ?", event.EventID, userID).
		First(&registration).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	if err := ctrl.DB.Model(&registration).
		Update("status", model.RegStatusCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan pendaftaran")
	}
	return helper.JsonUpdated(c, "Pendaftaran dibatalkan", dto.ToRegistrationResponse(&registration, ""))
}

// 🟡 PATCH /api/a/events/:id/registrants/:registration_id
// Admin menandai hadir / memindahkan status pendaftaran.
func (ctrl *EventController) UpdateRegistrationStatus(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

	registrationID, err := uuid.Parse(c.Params("registration_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendaftaran tidak valid")
	}

	type Request struct {
		Status string `json:"status"`
	}
	var body Request
	if err := c.BodyParser(&body); err != nil || !model.ValidRegistrationStatus(body.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status pendaftaran tidak valid")
	}

	var registration model.EventRegistrationModel
	if err := ctrl.DB.
		Where("id = ? AND event_id = ?", registrationID, event.EventID).
		First(&registration).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	if err := ctrl.DB.Model(&registration).Update("status", body.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pendaftaran")
	}
	return helper.JsonUpdated(c, "Status pendaftaran diperbarui", dto.ToRegistrationResponse(&registration, ""))
}

// 🟢 GET /api/a/events/:id/registrants
func (ctrl *EventController) GetRegistrants(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.EventRegistrationModel{}).Where("event_id = ?", event.EventID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftar")
	}

	var registrations []model.EventRegistrationModel
	if err := q.Order("registered_at ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftar")
	}

	names := ctrl.registrantNames(registrations)
	resp := make([]dto.RegistrationResponse, 0, len(registrations))
	for i := range registrations {
		resp = append(resp, dto.ToRegistrationResponse(&registrations[i], names[registrations[i].UserID]))
	}
	return helper.JsonList(c, "Daftar pendaftar", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== EXPORT ===================== */

// 🟢 GET /api/a/events/:id/registrants/export
// Unduh CSV: attachment event-registrations-<slug>.csv
func (ctrl *EventController) ExportRegistrantsCSV(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	event, ferr := ctrl.findEvent(c, schoolID)
	if event == nil {
		return ferr
	}

	var registrations []model.EventRegistrationModel
	if err := ctrl.DB.
		Where("event_id = ?", event.EventID).
		Order("registered_at ASC").
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftar")
	}

	userIDs := make([]uuid.UUID, 0, len(registrations))
	for _, r := range registrations {
		userIDs = append(userIDs, r.UserID)
	}
	users := map[uuid.UUID]userModel.UserModel{}
	if len(userIDs) > 0 {
		var list []userModel.UserModel
		if err := ctrl.DB.Select("id", "full_name", "email").
			Where("id IN ?", userIDs).
			Find(&list).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftar")
		}
		for _, u := range list {
			users[u.ID] = u
		}
	}

	rows := make([]service.RegistrantRow, 0, len(registrations))
	for _, r := range registrations {
		u := users[r.UserID]
		rows = append(rows, service.RegistrantRow{
			FullName:     u.FullName,
			Email:        u.Email,
			Status:       r.Status,
			RegisteredAt: r.RegisteredAt,
		})
	}

	var buf bytes.Buffer
	if err := service.WriteRegistrantsCSV(&buf, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="event-registrations-%s.csv"`, event.EventSlug))
	return c.Send(buf.Bytes())
}

/* ===================== LOOKUPS ===================== */

func (ctrl *EventController) findEvent(c *fiber.Ctx, schoolID uuid.UUID) (*model.EventModel, error) {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID acara tidak valid")
	}
	var event model.EventModel
	if err := ctrl.DB.
		Where("event_id = ? AND event_school_id = ?", eventID, schoolID).
		First(&event).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Acara tidak ditemukan")
	}
	return &event, nil
}

func (ctrl *EventController) registrantNames(registrations []model.EventRegistrationModel) map[uuid.UUID]string {
	names := map[uuid.UUID]string{}
	if len(registrations) == 0 {
		return names
	}
	ids := make([]uuid.UUID, 0, len(registrations))
	for _, r := range registrations {
		ids = append(ids, r.UserID)
	}
	var users []userModel.UserModel
	if err := ctrl.DB.Select("id", "full_name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil nama pendaftar: %v", err)
		return names
	}
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names
}

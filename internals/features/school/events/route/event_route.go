package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/events/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route admin & faculty: kelola acara dan pendaftarnya
func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFaculty("manajemen acara"),
			constants.FacultyAndAbove,
		),
	)
	events.Post("/", ctrl.CreateEvent)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
	events.Get("/:id/registrants", ctrl.GetRegistrants)
	events.Get("/:id/registrants/export", ctrl.ExportRegistrantsCSV)
	events.Patch("/:id/registrants/:registration_id", ctrl.UpdateRegistrationStatus)
}

// Route user login: lihat acara + daftar/batal
func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.GetEvents)
	events.Get("/:slug", ctrl.GetEventBySlug)
	events.Post("/:id/register", ctrl.RegisterForEvent)
	events.Post("/:id/cancel", ctrl.CancelRegistration)
}

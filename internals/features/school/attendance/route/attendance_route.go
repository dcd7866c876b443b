package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/attendance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route faculty & admin untuk absensi
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFaculty("absensi"),
			constants.FacultyAndAbove,
		),
	)
	attendance.Post("/", ctrl.SaveAttendance)
	attendance.Get("/sessions", ctrl.GetSessions)
	attendance.Get("/alerts", ctrl.GetAbsenteeAlerts)
}

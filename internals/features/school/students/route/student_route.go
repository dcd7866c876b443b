package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/students/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route admin & faculty untuk data siswa
func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentProfileController(db)

	students := api.Group("/students",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFaculty("data siswa"),
			constants.FacultyAndAbove,
		),
	)
	students.Post("/", ctrl.CreateStudentProfile)
	students.Get("/", ctrl.GetStudentProfiles)
	students.Patch("/:id", ctrl.UpdateStudentProfile)
}

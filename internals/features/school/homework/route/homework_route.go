package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/homework/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route faculty & admin: buat tugas + lihat pengumpulan
func HomeworkAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeworkController(db)

	homework := api.Group("/homework",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFaculty("tugas"),
			constants.FacultyAndAbove,
		),
	)
	homework.Post("/", ctrl.CreateAssignment)
	homework.Get("/:id/submissions", ctrl.GetSubmissions)
}

// Route user login: lihat tugas + kumpulkan jawaban
func HomeworkUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeworkController(db)

	homework := api.Group("/homework")
	homework.Get("/", ctrl.GetAssignments)
	homework.Post("/:id/submit", ctrl.SubmitHomework)
}

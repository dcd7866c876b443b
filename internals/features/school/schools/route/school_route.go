package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/schools/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route admin (super_admin / co_admin)
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSchoolController(db)

	schools := api.Group("/schools",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("manajemen sekolah"),
			constants.AdminRoles,
		),
	)
	schools.Post("/", ctrl.CreateSchool)
	schools.Patch("/", ctrl.UpdateSchool)
}

// Route user login (role apa pun)
func SchoolUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSchoolController(db)

	schools := api.Group("/schools")
	schools.Get("/:slug", ctrl.GetSchoolBySlug)
	schools.Post("/join", ctrl.JoinSchool)
}

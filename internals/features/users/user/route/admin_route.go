package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Khusus admin sekolah (super_admin / co_admin)
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("manajemen user"),
			constants.AdminRoles,
		),
	)
	users.Get("/", ctrl.GetUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Patch("/:id", ctrl.UpdateUser)
	users.Post("/grant-access", ctrl.GrantAccess)
}

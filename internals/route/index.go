// internals/route/index.go
package route

import (
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes memasang seluruh route aplikasi.
// /api/a = permukaan admin/faculty, /api/u = permukaan user login.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")

	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	details.AdminRoutes(admin, db)

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	details.UserRoutes(user, db)
}

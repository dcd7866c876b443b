package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/imports/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route admin: import massal data sekolah
func ImportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewImportController(db)

	imports := api.Group("/imports",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("import massal"),
			constants.AdminRoles,
		),
	)
	imports.Get("/fields", ctrl.GetImportFields)
	imports.Get("/template", ctrl.DownloadTemplate)
	imports.Post("/validate", ctrl.ValidateImport)
	imports.Post("/commit", ctrl.CommitImport)
}

// internals/route/details/user_details_routes.go
package details

import (
	eventRoute "schoolku_backend/internals/features/school/events/route"
	homeworkRoute "schoolku_backend/internals/features/school/homework/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRoutes: permukaan /api/u (semua user login)
func UserRoutes(api fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolUserRoutes(api, db)
	homeworkRoute.HomeworkUserRoutes(api, db)
	eventRoute.EventUserRoutes(api, db)
}

// internals/route/details/admin_details_routes.go
package details

import (
	aiRoute "schoolku_backend/internals/features/ai/route"
	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	eventRoute "schoolku_backend/internals/features/school/events/route"
	homeworkRoute "schoolku_backend/internals/features/school/homework/route"
	importRoute "schoolku_backend/internals/features/school/imports/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	userRoute "schoolku_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRoutes: permukaan /api/a (admin, co-admin, faculty)
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
	schoolRoute.SchoolAdminRoutes(api, db)
	studentRoute.StudentAdminRoutes(api, db)
	attendanceRoute.AttendanceAdminRoutes(api, db)
	homeworkRoute.HomeworkAdminRoutes(api, db)
	eventRoute.EventAdminRoutes(api, db)
	importRoute.ImportAdminRoutes(api, db)
	aiRoute.AIRoutes(api)
}

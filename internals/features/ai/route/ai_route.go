package route

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/ai/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

// Route generator konten AI: role terbatas + rate limit khusus
func AIRoutes(api fiber.Router) {
	ctrl := controller.NewAIController()

	generate := api.Group("/generate",
		middlewares.GeneratorRateLimiter(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFaculty("generator konten"),
			constants.GeneratorRoles,
		),
	)
	generate.Post("/ideas", ctrl.GenerateIdeas)
	generate.Post("/quiz", ctrl.GenerateQuiz)
	generate.Post("/teacher-prep", ctrl.GenerateTeacherPrep)
	generate.Post("/code-tutor", ctrl.GenerateCodeTutor)
}

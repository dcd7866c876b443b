// internals/route/base_routes.go
package route

import (
	"schoolku_backend/internals/databases"
	"schoolku_backend/internals/observability"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes: landing, health check, dan metrics.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Schoolku API aktif 🚀",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if err := database.Ping(); err != nil {
			dbStatus = "down"
		}
		redisStatus := "up"
		if !database.RedisHealthy(c.Context()) {
			redisStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus == "down" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"success": dbStatus == "up",
			"data": fiber.Map{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	app.Get("/metrics", observability.MetricsHandler())
}

package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "schoolku_backend/internals/middlewares/logger"
	"schoolku_backend/internals/observability"
)

// SetupMiddlewares memasang middleware dasar untuk seluruh app.
// Urutan: recovery → cors → logger → metrics → global limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(observability.MetricsMiddleware())
	app.Use(GlobalRateLimiter())
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sultanuyarr/ai-cv-uyum-analizi/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, authH *handlers.AuthHandler, healthH *handlers.HealthHandler, analysisH *handlers.AnalysisHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// health and readiness endpoints for probes/monitoring
	v1.Get("/health", healthH.Health)
	v1.Get("/ready", healthH.Ready)

	a := v1.Group("/auth")
	a.Post("/register", authH.Register)
	a.Post("/login", authH.Login)

	// analysis: upload and read are public like the original frontend
	// expects; the per-user listing requires a token
	an := v1.Group("/analysis")
	an.Post("/upload", analysisH.Upload)
	an.Get("/:id", analysisH.Get)

	v1.Get("/analyses", authMW, analysisH.List)
}

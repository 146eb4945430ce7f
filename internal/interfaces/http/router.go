package http

import (
	"github.com/gofiber/fiber/v2"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	"github.com/jhoicas/ghost-audit/internal/application/dto"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	RunAudit  *appaudit.RunAuditUseCase
	Renderers map[string]appaudit.ReportRenderer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	api := app.Group("/api")

	audit := api.Group("/audit")
	auditHandler := NewAuditHandler(deps.RunAudit, deps.Renderers)
	audit.Post("/runs", auditHandler.RunAudit)
	audit.Get("/report", auditHandler.GetReport)
}

package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	"github.com/jhoicas/ghost-audit/internal/application/dto"
	"github.com/jhoicas/ghost-audit/internal/domain"
)

const reportBaseName = "final_audit_report"

// AuditHandler expone el pipeline de auditoría por HTTP.
type AuditHandler struct {
	uc        *appaudit.RunAuditUseCase
	renderers map[string]appaudit.ReportRenderer
}

// NewAuditHandler construye el handler. renderers se indexa por formato (csv, xlsx, pdf).
func NewAuditHandler(uc *appaudit.RunAuditUseCase, renderers map[string]appaudit.ReportRenderer) *AuditHandler {
	return &AuditHandler{uc: uc, renderers: renderers}
}

// RunAudit ejecuta una corrida completa y escribe los reportes configurados.
// @Router /api/audit/runs [post]
func (h *AuditHandler) RunAudit(c *fiber.Ctx) error {
	run, err := h.uc.Execute(c.Context())
	if err != nil {
		return writeAuditError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewAuditRunDTO(run, true))
}

// GetReport recalcula la auditoría sin escribir archivos y devuelve el reporte en el formato pedido.
// @Param  format  query  string  false  "json (default), csv, xlsx, pdf"
// @Router /api/audit/report [get]
func (h *AuditHandler) GetReport(c *fiber.Ctx) error {
	var req dto.AuditReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "json"
	}

	var renderer appaudit.ReportRenderer
	if format != "json" {
		var ok bool
		if renderer, ok = h.renderers[format]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_FORMAT", Message: fmt.Sprintf("formato no soportado: %q", format),
			})
		}
	}

	run, err := h.uc.Preview(c.Context())
	if err != nil {
		return writeAuditError(c, err)
	}
	if renderer == nil {
		return c.JSON(dto.NewAuditRunDTO(run, false))
	}

	data, err := renderer.Render(c.Context(), run)
	if err != nil {
		return writeAuditError(c, err)
	}
	c.Set(fiber.HeaderContentType, renderer.ContentType())
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.%s"`, reportBaseName, renderer.Extension()))
	return c.Send(data)
}

// writeAuditError: errores de entrada son 422 (el archivo está mal), el resto 500.
func writeAuditError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingColumn):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "MISSING_COLUMN", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnreadableInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "UNREADABLE_INPUT", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}

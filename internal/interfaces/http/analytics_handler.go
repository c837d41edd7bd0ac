package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Drogueria-api/internal/application/dto"
	"github.com/jhoicas/Drogueria-api/internal/application/usecase"
	"github.com/jhoicas/Drogueria-api/internal/domain"
)

// AnalyticsHandler expone el reporte de analítica por período (protegido).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetReport devuelve el reporte del período móvil pedido (?period=7|30|90|365, default 30).
// GET /api/analytics
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	req := dto.AnalyticsRequest{Period: c.QueryInt("period", 0)}
	out, err := h.uc.GetReport(c.Context(), req)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser 7, 30, 90 o 365"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

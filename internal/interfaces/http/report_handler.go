package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
)

// ReportHandler consultas de solo lectura para el tablero.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TotalProfit godoc
// @Summary      Utilidad acumulada del libro de ventas
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TotalProfitResponse
// @Router       /api/reports/profit [get]
func (h *ReportHandler) TotalProfit(c *fiber.Ctx) error {
	out, err := h.uc.TotalProfit(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos en o bajo el umbral de stock
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("threshold", 0))
	out, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
)

// ReceiptHandler genera recibos (texto, JSON o PDF). No persiste nada.
type ReceiptHandler struct {
	uc        *usecase.ReceiptUseCase
	validator *validator.Validate
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, validator: validator.New()}
}

// Generate godoc
// @Summary      Generar recibo
// @Description  Calcula total = cantidad × precio y arma el recibo con marca de tiempo.
//               Con ?format=pdf devuelve el PDF; con ?format=text el texto plano.
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        format  query  string  false  "json (por defecto), text o pdf"
// @Param        body    body   dto.ReceiptRequest  true  "Datos del recibo"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Generate(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	switch c.Query("format", "json") {
	case "pdf":
		_, raw, err := h.uc.BuildPDF(c.Context(), in)
		if err != nil {
			return h.mapError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(raw)
	case "text":
		out, err := h.uc.Build(in)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.SendString(out.Text)
	default:
		out, err := h.uc.Build(in)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(out)
	}
}

func (h *ReceiptHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

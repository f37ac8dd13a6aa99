package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
)

// MarkupHandler expone el recálculo masivo de markup por filtro.
type MarkupHandler struct {
	uc *usecase.MarkupUseCase
}

// NewMarkupHandler construye el handler.
func NewMarkupHandler(uc *usecase.MarkupUseCase) *MarkupHandler {
	return &MarkupHandler{uc: uc}
}

// ApplyPercent godoc
// @Summary      Ajustar markup por porcentaje sobre un filtro
// @Description  Multiplica el markup de las posiciones filtradas por 1 + percent/100 en un único UPDATE.
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarkupUpdateRequest  true  "Porcentaje y filtro"
// @Success      200   {object}  dto.MarkupUpdateResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/positions/markup-percent [patch]
func (h *MarkupHandler) ApplyPercent(c *fiber.Ctx) error {
	var in dto.MarkupUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyPercent(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
)

// PositionHandler maneja las peticiones HTTP para posiciones.
type PositionHandler struct {
	uc *usecase.PositionUseCase
}

// NewPositionHandler construye el handler.
func NewPositionHandler(uc *usecase.PositionUseCase) *PositionHandler {
	return &PositionHandler{uc: uc}
}

// List godoc
// @Summary      Buscar posiciones
// @Tags         positions
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        category      query  string  false  "Filtrar por categoría"
// @Param        sub_category  query  string  false  "Filtrar por subcategoría"
// @Success      200  {array}  dto.PositionResponse
// @Router       /api/positions [get]
func (h *PositionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(queryPtr(c, "warehouse_id"), queryPtr(c, "category"), queryPtr(c, "sub_category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener posición por ID
// @Tags         positions
// @Produce      json
// @Param        id   path  string  true  "ID de la posición"
// @Success      200  {object}  dto.PositionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/positions/{id} [get]
func (h *PositionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "posición no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear posición
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePositionRequest  true  "Datos de la posición"
// @Success      201   {object}  dto.PositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/positions [post]
func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Category == "" || in.SubCategory == "" || in.Name == "" || in.Description == "" || in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category, sub_category, name, description y warehouse_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBulk godoc
// @Summary      Crear posiciones por lote (éxito/fallo por ítem)
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreatePositionRequest  true  "Lote de posiciones"
// @Success      200   {object}  dto.BulkCreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/positions/bulk [post]
func (h *PositionHandler) CreateBulk(c *fiber.Ctx) error {
	var in []dto.CreatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateMany(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar posición (parche parcial)
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la posición"
// @Param        body  body  dto.UpdatePositionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PositionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/positions/{id} [patch]
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "posición no encontrada"})
	}
	return c.JSON(out)
}

// UpdateBulk godoc
// @Summary      Actualizar posiciones por lote (parche por id, fallo por ítem)
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]dto.UpdatePositionRequest  true  "Mapa id → parche"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Router       /api/positions/bulk [patch]
func (h *PositionHandler) UpdateBulk(c *fiber.Ctx) error {
	var in map[string]dto.UpdatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.UpdateMany(c.Context(), in))
}

// Delete godoc
// @Summary      Eliminar posición
// @Tags         positions
// @Param        id  path  string  true  "ID de la posición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/positions/{id} [delete]
func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteBulk godoc
// @Summary      Eliminar posiciones por lote (fallo por ítem)
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "IDs a eliminar"
// @Success      200   {object}  dto.BulkDeleteResponse
// @Router       /api/positions/delete-bulk [post]
func (h *PositionHandler) DeleteBulk(c *fiber.Ctx) error {
	var ids []string
	if err := c.BodyParser(&ids); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.DeleteMany(c.Context(), ids))
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
)

// ProviderManagerHandler maneja las peticiones HTTP para contactos de proveedor.
type ProviderManagerHandler struct {
	uc *usecase.ProviderManagerUseCase
}

// NewProviderManagerHandler construye el handler.
func NewProviderManagerHandler(uc *usecase.ProviderManagerUseCase) *ProviderManagerHandler {
	return &ProviderManagerHandler{uc: uc}
}

// List godoc
// @Summary      Listar contactos de proveedor
// @Tags         provider-managers
// @Produce      json
// @Param        provider_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {array}  dto.ManagerResponse
// @Router       /api/provider-managers [get]
func (h *ProviderManagerHandler) List(c *fiber.Ctx) error {
	var out []dto.ManagerResponse
	var err error
	if providerID := queryPtr(c, "provider_id"); providerID != nil {
		out, err = h.uc.ListByProvider(*providerID)
	} else {
		out, err = h.uc.List()
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener contacto por ID
// @Tags         provider-managers
// @Produce      json
// @Param        id   path  string  true  "ID del contacto"
// @Success      200  {object}  dto.ManagerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/provider-managers/{id} [get]
func (h *ProviderManagerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear contacto de proveedor
// @Tags         provider-managers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManagerRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.ManagerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/provider-managers [post]
func (h *ProviderManagerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProviderID == "" || in.Name == "" || in.Telephones == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "provider_id, name y telephones son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar contacto (parche parcial)
// @Tags         provider-managers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contacto"
// @Param        body  body  dto.UpdateManagerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ManagerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/provider-managers/{id} [patch]
func (h *ProviderManagerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contacto
// @Tags         provider-managers
// @Param        id  path  string  true  "ID del contacto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/provider-managers/{id} [delete]
func (h *ProviderManagerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

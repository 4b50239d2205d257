package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/truss"
)

// TrussHandler maneja el inventario de treliças y su libro de préstamos (protegido).
type TrussHandler struct {
	uc *truss.UseCase
}

// NewTrussHandler construye el handler.
func NewTrussHandler(uc *truss.UseCase) *TrussHandler {
	return &TrussHandler{uc: uc}
}

// Create godoc
// @Summary      Crear treliça
// @Tags         trusses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrussRequest  true  "Datos de la treliça"
// @Success      201   {object}  dto.TrussResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trusses [post]
func (h *TrussHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrussRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateTruss(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar treliças
// @Tags         trusses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrussListResponse
// @Router       /api/trusses [get]
func (h *TrussHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTrusses()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar treliça
// @Tags         trusses
// @Security     Bearer
// @Param        id  path  string  true  "ID de la treliça"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trusses/{id} [delete]
func (h *TrussHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteTruss(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterMovement godoc
// @Summary      Registrar retirada o devolución
// @Description  Retirar más de lo disponible devuelve 409.
// @Tags         trusses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTrussMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.TrussMovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trusses/movements [post]
func (h *TrussHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterTrussMovementRequest
	if !validateBody(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterMovement(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar el libro de préstamos
// @Tags         trusses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrussMovementListResponse
// @Router       /api/trusses/movements [get]
func (h *TrussHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// MarkReturned godoc
// @Summary      Cerrar una retirada activa
// @Description  Devuelve la cantidad al stock y pasa el asiento a returned.
// @Tags         trusses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del asiento de retirada"
// @Success      200  {object}  dto.TrussMovementResponse
// @Failure      409  {object}  dto.ErrorResponse  "ya devuelta"
// @Router       /api/trusses/movements/{id}/return [patch]
func (h *TrussHandler) MarkReturned(c *fiber.Ctx) error {
	out, err := h.uc.MarkReturned(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain"
)

// InventoryHandler maneja las mutaciones de inventario vía REST (mismas reglas que GraphQL).
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// UpdateDemand godoc
// @Summary      Actualizar demanda de un producto
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "Nueva demanda"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [put]
func (h *InventoryHandler) UpdateDemand(c *fiber.Ctx) error {
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Demand == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "demand es requerido"})
	}
	out, err := h.uc.UpdateDemand(c.UserContext(), c.Params("id"), *in.Demand)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// TransferStock godoc
// @Summary      Transferir stock desde la bodega origen
// @Description  Descuenta qty del producto si está en la bodega "from". La bodega "to" no se acredita.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.TransferStockRequest  true  "from, to, qty"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transfer [post]
func (h *InventoryHandler) TransferStock(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Qty == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qty es requerido"})
	}
	out, err := h.uc.TransferStock(c.UserContext(), inventory.TransferInput{
		ProductID: c.Params("id"),
		From:      in.From,
		To:        in.To,
		Qty:       *in.Qty,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// writeDomainError traduce errores de dominio a estado HTTP y código.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrWrongSourceWarehouse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WRONG_SOURCE_WAREHOUSE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

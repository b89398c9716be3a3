package handler

import (
	"errors"

	"go-stock-finance/internal/state"
	"go-stock-finance/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	state *state.Container
}

func NewSalesHandler(c *state.Container) *SalesHandler {
	return &SalesHandler{state: c}
}

// RecordSaleRequest carries the unit price and total the screen computed
// from the product's selling price at submission time.
type RecordSaleRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	QuantitySold int     `json:"quantitySold" validate:"required,gt=0"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
	TotalAmount  float64 `json:"totalAmount" validate:"gte=0"`
}

func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	return c.JSON(h.state.Sales())
}

func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var req RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].Error()})
	}

	sale, err := h.state.RecordSale(req.ProductID, req.QuantitySold, req.UnitPrice, req.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, state.ErrInsufficientStock):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

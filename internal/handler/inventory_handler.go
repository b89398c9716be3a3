package handler

import (
	"errors"

	"go-stock-finance/internal/state"
	"go-stock-finance/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	state *state.Container
}

func NewInventoryHandler(c *state.Container) *InventoryHandler {
	return &InventoryHandler{state: c}
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	SellingPrice  float64 `json:"sellingPrice" validate:"gte=0"`
}

type AddStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.state.Products())
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].Error()})
	}

	product := h.state.AddProduct(req.Name, req.Quantity, req.PurchasePrice, req.SellingPrice)
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// AddStock increments stock for a product. An unknown id is acknowledged
// without effect, matching the container's lookup-miss policy.
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var req AddStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].Error()})
	}

	h.state.AddStock(c.Params("id"), req.Quantity)
	return c.JSON(fiber.Map{"message": "Stock updated"})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.state.RemoveProduct(c.Params("id")); err != nil {
		if errors.Is(err, state.ErrProductReferenced) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Product removed"})
}

package handler

import (
	"go-stock-finance/internal/state"
	"go-stock-finance/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	state *state.Container
}

func NewExpenseHandler(c *state.Container) *ExpenseHandler {
	return &ExpenseHandler{state: c}
}

type AddExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	return c.JSON(h.state.Expenses())
}

func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].Error()})
	}

	expense := h.state.AddExpense(req.Description, req.Amount)
	return c.Status(201).JSON(fiber.Map{"message": "Expense added", "data": expense})
}

func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	h.state.RemoveExpense(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Expense removed"})
}

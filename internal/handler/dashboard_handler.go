package handler

import (
	"go-stock-finance/internal/report"
	"go-stock-finance/internal/state"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	state *state.Container
}

func NewDashboardHandler(c *state.Container) *DashboardHandler {
	return &DashboardHandler{state: c}
}

// GetSummary returns the dashboard totals, recomputed from the live
// collections on every request.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary := report.Summarize(h.state.Products(), h.state.Sales(), h.state.Expenses())
	return c.JSON(summary)
}

// GetMonthly returns the month-bucketed revenue/expense/profit series for
// the overview chart.
func (h *DashboardHandler) GetMonthly(c *fiber.Ctx) error {
	rollup := report.MonthlyRollup(h.state.Sales(), h.state.Expenses())
	return c.JSON(fiber.Map{"data": rollup})
}

package handler

import (
	"go-stock-finance/internal/view"

	"github.com/gofiber/fiber/v2"
)

type ViewHandler struct {
	router *view.Router
}

func NewViewHandler(r *view.Router) *ViewHandler {
	return &ViewHandler{router: r}
}

type NavigateRequest struct {
	View string `json:"view"`
}

func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": h.router.Current()})
}

// Navigate switches the current screen. Unknown names fall back to the
// dashboard rather than erroring.
func (h *ViewHandler) Navigate(c *fiber.Ctx) error {
	var req NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	current := h.router.Navigate(view.View(req.View))
	return c.JSON(fiber.Map{"view": current})
}

package view

import "sync"

// View identifies one of the four screens.
type View string

const (
	Dashboard View = "DASHBOARD"
	Inventory View = "INVENTORY"
	Sales     View = "SALES"
	Expenses  View = "EXPENSES"
)

// Parse maps an input to a View. Anything unknown falls back to Dashboard.
func Parse(s string) View {
	switch View(s) {
	case Dashboard, Inventory, Sales, Expenses:
		return View(s)
	default:
		return Dashboard
	}
}

// Router holds the current screen for the single client session. There is
// no history stack and no transition guards.
type Router struct {
	mu      sync.Mutex
	current View
}

func NewRouter() *Router {
	return &Router{current: Dashboard}
}

func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate switches to v, falling back to Dashboard on unknown input.
func (r *Router) Navigate(v View) View {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = Parse(string(v))
	return r.current
}

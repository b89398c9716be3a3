package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Inventory, Parse("INVENTORY"))
	assert.Equal(t, Sales, Parse("SALES"))
	assert.Equal(t, Expenses, Parse("EXPENSES"))
	assert.Equal(t, Dashboard, Parse("DASHBOARD"))

	// Unknown input falls back to the dashboard.
	assert.Equal(t, Dashboard, Parse(""))
	assert.Equal(t, Dashboard, Parse("SETTINGS"))
	assert.Equal(t, Dashboard, Parse("inventory"))
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, Dashboard, r.Current(), "initial view is the dashboard")

	assert.Equal(t, Sales, r.Navigate(Sales))
	assert.Equal(t, Sales, r.Current())

	assert.Equal(t, Dashboard, r.Navigate(View("NOPE")))
	assert.Equal(t, Dashboard, r.Current())
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

func NewExpense(description string, amount float64) Expense {
	return Expense{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Date:        time.Now().UTC(),
	}
}

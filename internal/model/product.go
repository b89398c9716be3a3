package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a stock item. Quantity is mutated by restocks (increment) and
// recorded sales (decrement) and never goes below zero.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	SellingPrice  float64   `json:"sellingPrice"`
	AddedDate     time.Time `json:"addedDate"`
}

func NewProduct(name string, quantity int, purchasePrice, sellingPrice float64) Product {
	return Product{
		ID:            uuid.NewString(),
		Name:          name,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		AddedDate:     time.Now().UTC(),
	}
}

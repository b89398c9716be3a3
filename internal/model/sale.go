package model

import "time"

// Sale records a single sale of a product. ProductName and
// PurchasePriceAtSale are snapshotted from the Product when the sale is
// created so later product edits never change historical figures.
// Sales are append-only.
type Sale struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"productId"`
	ProductName         string    `json:"productName"`
	QuantitySold        int       `json:"quantitySold"`
	UnitPrice           float64   `json:"unitPrice"`
	TotalAmount         float64   `json:"totalAmount"`
	PurchasePriceAtSale float64   `json:"purchasePriceAtSale"`
	Date                time.Time `json:"date"`
}

// Cost returns the cost of goods for this sale.
func (s Sale) Cost() float64 {
	return s.PurchasePriceAtSale * float64(s.QuantitySold)
}

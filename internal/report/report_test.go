package report

import (
	"testing"
	"time"

	"go-stock-finance/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(date time.Time, qty int, unitPrice, purchasePrice float64) model.Sale {
	return model.Sale{
		ID:                  "s-" + date.Format("20060102"),
		ProductID:           "p-1",
		ProductName:         "Widget",
		QuantitySold:        qty,
		UnitPrice:           unitPrice,
		TotalAmount:         unitPrice * float64(qty),
		PurchasePriceAtSale: purchasePrice,
		Date:                date,
	}
}

func TestSummarize(t *testing.T) {
	products := []model.Product{
		{ID: "p-1", Name: "Widget", Quantity: 7, PurchasePrice: 5.00, SellingPrice: 9.00},
		{ID: "p-2", Name: "Gadget", Quantity: 3, PurchasePrice: 10.00, SellingPrice: 15.00},
	}
	sales := []model.Sale{
		saleOn(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), 3, 9.00, 5.00),
	}
	expenses := []model.Expense{
		{ID: "e-1", Description: "Rent", Amount: 20.00, Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	s := Summarize(products, sales, expenses)
	assert.Equal(t, 27.00, s.TotalRevenue)
	assert.Equal(t, 15.00, s.TotalCostOfGoodsSold)
	assert.Equal(t, 12.00, s.GrossProfit)
	assert.Equal(t, 20.00, s.TotalExpenses)
	// Net cash flow is revenue minus expenses only, COGS excluded.
	assert.Equal(t, 7.00, s.NetCashFlow)
	assert.Equal(t, 10, s.TotalInventoryItems)
	assert.Equal(t, 65.00, s.TotalInventoryValue)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.GrossProfit)
	assert.Zero(t, s.NetCashFlow)
	assert.Zero(t, s.TotalInventoryItems)
}

func TestGrossProfitIdentity(t *testing.T) {
	var sales []model.Sale
	base := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		sales = append(sales, saleOn(base.AddDate(0, 0, i), i%7+1, float64(i)*1.25+0.99, float64(i)*0.75+0.10))
	}

	s := Summarize(nil, sales, nil)
	assert.Equal(t, s.TotalRevenue-s.TotalCostOfGoodsSold, s.GrossProfit)
}

func TestMonthlyRollup_ZeroFilledAndChronological(t *testing.T) {
	sales := []model.Sale{
		saleOn(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), 2, 10.00, 4.00),
		saleOn(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 1, 10.00, 4.00),
	}
	expenses := []model.Expense{
		{ID: "e-1", Description: "Rent", Amount: 50.00, Date: time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)},
	}

	rollup := MonthlyRollup(sales, expenses)
	require.Len(t, rollup, 3)

	assert.Equal(t, "Jan 2024", rollup[0].Month)
	assert.Equal(t, "Feb 2024", rollup[1].Month)
	assert.Equal(t, "Mar 2024", rollup[2].Month)

	assert.Equal(t, 10.00, rollup[0].Revenue)
	assert.Equal(t, 0.00, rollup[0].Expense)
	assert.Equal(t, 6.00, rollup[0].EstimatedProfit)

	assert.Equal(t, 0.00, rollup[1].Revenue)
	assert.Equal(t, 50.00, rollup[1].Expense)
	assert.Equal(t, -50.00, rollup[1].EstimatedProfit)

	assert.Equal(t, 20.00, rollup[2].Revenue)
	assert.Equal(t, 0.00, rollup[2].Expense)
	assert.Equal(t, 12.00, rollup[2].EstimatedProfit)
}

func TestMonthlyRollup_OrdersAcrossYears(t *testing.T) {
	sales := []model.Sale{
		saleOn(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1, 5.00, 2.00),
		saleOn(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), 1, 5.00, 2.00),
	}

	rollup := MonthlyRollup(sales, nil)
	require.Len(t, rollup, 2)
	assert.Equal(t, "Dec 2023", rollup[0].Month)
	assert.Equal(t, "Jan 2024", rollup[1].Month)
}

func TestMonthlyRollup_Empty(t *testing.T) {
	assert.Empty(t, MonthlyRollup(nil, nil))
}

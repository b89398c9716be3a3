// Package report derives financial summaries from the raw collections.
// Everything here is pure and recomputed per call, there is no caching.
package report

import (
	"sort"
	"time"

	"go-stock-finance/internal/model"
)

type Summary struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalCostOfGoodsSold float64 `json:"totalCostOfGoodsSold"`
	GrossProfit          float64 `json:"grossProfit"`
	TotalExpenses        float64 `json:"totalExpenses"`
	NetCashFlow          float64 `json:"netCashFlow"`
	TotalInventoryItems  int     `json:"totalInventoryItems"`
	TotalInventoryValue  float64 `json:"totalInventoryValue"`
}

// Summarize computes the dashboard totals. NetCashFlow is money in from
// sales minus money out from expenses; it intentionally does not subtract
// cost of goods sold.
func Summarize(products []model.Product, sales []model.Sale, expenses []model.Expense) Summary {
	var s Summary
	for _, sale := range sales {
		s.TotalRevenue += sale.TotalAmount
		s.TotalCostOfGoodsSold += sale.Cost()
	}
	s.GrossProfit = s.TotalRevenue - s.TotalCostOfGoodsSold

	for _, e := range expenses {
		s.TotalExpenses += e.Amount
	}
	s.NetCashFlow = s.TotalRevenue - s.TotalExpenses

	for _, p := range products {
		s.TotalInventoryItems += p.Quantity
		s.TotalInventoryValue += p.PurchasePrice * float64(p.Quantity)
	}
	return s
}

// monthLabel is the bucket key, e.g. "Jan 2024".
const monthLabel = "Jan 2006"

type MonthlyEntry struct {
	Month           string  `json:"month"`
	Revenue         float64 `json:"revenue"`
	Expense         float64 `json:"expense"`
	EstimatedProfit float64 `json:"estimatedProfit"`
}

// MonthlyRollup buckets sales and expenses by calendar month. A month with
// activity on either side appears with the other side zero. EstimatedProfit
// is that month's revenue minus its cost of goods minus its expenses.
// Entries are chronological ascending.
func MonthlyRollup(sales []model.Sale, expenses []model.Expense) []MonthlyEntry {
	type monthTotals struct {
		revenue float64
		cost    float64
		expense float64
	}
	byMonth := make(map[string]*monthTotals)
	bucket := func(t time.Time) *monthTotals {
		label := t.Format(monthLabel)
		m, ok := byMonth[label]
		if !ok {
			m = &monthTotals{}
			byMonth[label] = m
		}
		return m
	}

	for _, s := range sales {
		m := bucket(s.Date)
		m.revenue += s.TotalAmount
		m.cost += s.Cost()
	}
	for _, e := range expenses {
		bucket(e.Date).expense += e.Amount
	}

	labels := make([]string, 0, len(byMonth))
	for label := range byMonth {
		labels = append(labels, label)
	}
	// Order by parsing day 1 of each label.
	sort.Slice(labels, func(i, j int) bool {
		ti, _ := time.Parse("02 "+monthLabel, "01 "+labels[i])
		tj, _ := time.Parse("02 "+monthLabel, "01 "+labels[j])
		return ti.Before(tj)
	})

	entries := make([]MonthlyEntry, 0, len(labels))
	for _, label := range labels {
		m := byMonth[label]
		entries = append(entries, MonthlyEntry{
			Month:           label,
			Revenue:         m.revenue,
			Expense:         m.expense,
			EstimatedProfit: m.revenue - m.cost - m.expense,
		})
	}
	return entries
}

// Package distribution aggregates expenses into a per-category ranking,
// the data behind the breakdown chart.
package distribution

import (
	"sort"

	"github.com/shopspring/decimal"

	"centavo/internal/models"
	"centavo/internal/styles"
)

// Item is one category's share of the expense total.
type Item struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Icon   string          `json:"icon"`
	Color  string          `json:"color"`
}

// Map groups expense transactions by category and returns one item per
// category, sorted by summed amount descending. Incomes are excluded.
//
// Grouping is by the exact label, case-sensitive: labels differing only in
// case form separate groups. Ties keep the order in which the categories
// were first seen in the input, so the output is deterministic for a given
// transaction order.
func Map(transactions []models.Transaction) []Item {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	items := make([]Item, 0, len(order))
	for _, name := range order {
		style := styles.ForCategory(name)
		items = append(items, Item{
			Name:   name,
			Amount: totals[name],
			Icon:   style.Icon,
			Color:  style.Color,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})

	return items
}

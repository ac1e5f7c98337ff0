package helpers

import "go-restaurant-reservation/models"

// OrderTotals sums an order's line items. Items missing a quantity or a
// captured unit price are skipped rather than guessed at.
func OrderTotals(items []models.OrderItem) (float64, int) {
	var amount float64
	var quantity int
	for _, item := range items {
		if item.Quantity == nil || item.Unit_price == nil {
			continue
		}
		amount += *item.Unit_price * float64(*item.Quantity)
		quantity += *item.Quantity
	}
	return amount, quantity
}

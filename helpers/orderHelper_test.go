package helpers

import (
	"testing"

	"go-restaurant-reservation/models"

	"gopkg.in/go-playground/assert.v1"
)

func orderItem(quantity int, unitPrice float64) models.OrderItem {
	return models.OrderItem{Quantity: &quantity, Unit_price: &unitPrice}
}

func TestOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		orderItem(2, 9.50),
		orderItem(1, 4.25),
		orderItem(3, 2.00),
	}
	amount, quantity := OrderTotals(items)
	assert.Equal(t, amount, 29.25)
	assert.Equal(t, quantity, 6)
}

// A changed line item quantity must land in the recomputed totals.
func TestOrderTotalsReflectQuantityChange(t *testing.T) {
	items := []models.OrderItem{
		orderItem(2, 9.50),
		orderItem(1, 4.25),
	}
	amount, quantity := OrderTotals(items)
	assert.Equal(t, amount, 23.25)
	assert.Equal(t, quantity, 3)

	five := 5
	items[1].Quantity = &five
	amount, quantity = OrderTotals(items)
	assert.Equal(t, amount, 40.25)
	assert.Equal(t, quantity, 7)
}

func TestOrderTotalsEmptyAndPartialRows(t *testing.T) {
	amount, quantity := OrderTotals(nil)
	assert.Equal(t, amount, 0.0)
	assert.Equal(t, quantity, 0)

	two := 2
	price := 3.50
	items := []models.OrderItem{
		{Quantity: &two},     // price never captured
		{Unit_price: &price}, // quantity missing
		orderItem(1, 3.50),
	}
	amount, quantity = OrderTotals(items)
	assert.Equal(t, amount, 3.50)
	assert.Equal(t, quantity, 1)
}

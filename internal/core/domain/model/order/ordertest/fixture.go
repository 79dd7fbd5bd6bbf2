// Package ordertest builds ledger fixtures for tests.
package ordertest

import (
	"testing"

	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// Line is a product line description for MustOrder.
type Line struct {
	Product  string
	Price    int
	Quantity int
}

// MustOrder builds an order or fails the test.
func MustOrder(t testing.TB, id int64, warehouse string, highwayCost int, lines ...Line) *order.Order {
	t.Helper()

	products := make([]order.ProductLine, 0, len(lines))
	for _, l := range lines {
		p, err := order.NewProductLine(l.Product, l.Price, l.Quantity)
		require.NoError(t, err)
		products = append(products, p)
	}

	o, err := order.NewOrder(id, warehouse, highwayCost, products)
	require.NoError(t, err)
	return o
}

// Ledger returns the four-order reference ledger: three warehouses, four
// distinct products, one product shipped from two warehouses.
func Ledger(t testing.TB) []*order.Order {
	t.Helper()

	return []*order.Order{
		MustOrder(t, 11973, "Мордор", -70,
			Line{Product: "ломтик июльского неба", Price: 450, Quantity: 1},
			Line{Product: "билет в Израиль", Price: 1000, Quantity: 3},
			Line{Product: "статуэтка Ленина", Price: 200, Quantity: 3},
		),
		MustOrder(t, 62239, "хутор близ Диканьки", -15,
			Line{Product: "билет в Израиль", Price: 1000, Quantity: 1},
		),
		MustOrder(t, 85794, "отель Лето", -50,
			Line{Product: "зеленая пластинка", Price: 10, Quantity: 2},
		),
		MustOrder(t, 33684, "Мордор", -30,
			Line{Product: "билет в Израиль", Price: 1000, Quantity: 2},
			Line{Product: "зеленая пластинка", Price: 10, Quantity: 1},
		),
	}
}

// LedgerJSON is Ledger in the input file format.
const LedgerJSON = `[
  {"order_id": 11973, "warehouse_name": "Мордор", "highway_cost": -70, "products": [
    {"product": "ломтик июльского неба", "price": 450, "quantity": 1},
    {"product": "билет в Израиль", "price": 1000, "quantity": 3},
    {"product": "статуэтка Ленина", "price": 200, "quantity": 3}
  ]},
  {"order_id": 62239, "warehouse_name": "хутор близ Диканьки", "highway_cost": -15, "products": [
    {"product": "билет в Израиль", "price": 1000, "quantity": 1}
  ]},
  {"order_id": 85794, "warehouse_name": "отель Лето", "highway_cost": -50, "products": [
    {"product": "зеленая пластинка", "price": 10, "quantity": 2}
  ]},
  {"order_id": 33684, "warehouse_name": "Мордор", "highway_cost": -30, "products": [
    {"product": "билет в Израиль", "price": 1000, "quantity": 2},
    {"product": "зеленая пластинка", "price": 10, "quantity": 1}
  ]}
]`

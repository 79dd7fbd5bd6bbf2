package order

import (
	"errors"
	"fmt"
	"slices"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is one entry of the order ledger: a shipment from a single warehouse.
//
// Order follows these invariants:
//   - The warehouse name is taken as is; an empty name is its own warehouse
//   - Must contain at least one valid product line, so its total quantity is positive
//   - Product lines keep their input order
//   - Can only be created through NewOrder
//
// highwayCost is the total delivery expense of the order. It is usually negative.
type Order struct {
	// id is the ledger identifier of the order
	id int64

	// warehouseName is the warehouse the order ships from
	warehouseName string

	// highwayCost is the total delivery expense, negative by convention
	highwayCost int

	// products are the lines in their original order
	products []ProductLine

	guard guard.ConstructorGuard
}

// NewOrder creates an Order, reporting every violated rule at once.
//
// Example:
//
//	ticket, _ := order.NewProductLine("билет в Израиль", 1000, 1)
//	o, err := order.NewOrder(62239, "хутор близ Диканьки", -15, []order.ProductLine{ticket})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int64, warehouseName string, highwayCost int, products []ProductLine) (*Order, error) {
	o := &Order{
		id:            id,
		warehouseName: warehouseName,
		highwayCost:   highwayCost,
		guard:         guard.NewConstructorGuard(),
	}

	if err := o.setProducts(products); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the ledger identifier.
func (o *Order) ID() int64 {
	return o.id
}

// WarehouseName returns the name of the shipping warehouse.
func (o *Order) WarehouseName() string {
	return o.warehouseName
}

// HighwayCost returns the total delivery expense of the order.
func (o *Order) HighwayCost() int {
	return o.highwayCost
}

// Products returns a copy of the product lines in their original order.
func (o *Order) Products() []ProductLine {
	return slices.Clone(o.products)
}

// TotalQuantity sums the quantities of all product lines. It is the divisor
// of the per-unit delivery rate.
//
// Example:
//
//	o, _ := order.NewOrder(33684, "Мордор", -30, []order.ProductLine{ticket, record})
//	units := o.TotalQuantity() // ticket x2 + record x1 == 3
func (o *Order) TotalQuantity() int {
	total := 0
	for _, p := range o.products {
		total += p.Quantity()
	}
	return total
}

func (o *Order) String() string {
	return fmt.Sprintf("Order(%d, %s, lines=%d)", o.id, o.warehouseName, len(o.products))
}

func (o *Order) setProducts(products []ProductLine) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("products", errors.New("order has no product lines"))
	}

	for i, p := range products {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d]", i), err)
		}
	}

	o.products = slices.Clone(products)
	return nil
}

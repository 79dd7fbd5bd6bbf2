package order

import (
	"errors"
	"fmt"
	"math"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrProductLineIsNotConstructed is returned when a ProductLine bypassed NewProductLine.
var ErrProductLineIsNotConstructed = errors.New("ProductLine must be created via NewProductLine constructor")

// ProductLine is one product within an order.
type ProductLine struct { //nolint:recvcheck //using for validation
	product  string
	price    int
	quantity int

	guard guard.ConstructorGuard
}

// NewProductLine validates and creates a product line.
//
// Parameters:
//   - product: product name, compared by exact match in every aggregation; may be empty
//   - price: unit price; not range-checked, non-negative by convention
//   - quantity: number of units, must be greater than 0
//
// Example:
//
//	line, err := order.NewProductLine("билет в Израиль", 1000, 3)
//	if err != nil {
//	    return err
//	}
func NewProductLine(product string, price int, quantity int) (ProductLine, error) {
	line := ProductLine{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	line.product = product

	if err := line.setQuantity(quantity); err != nil {
		return ProductLine{}, err
	}

	return line, nil
}

// Validate reports whether the line was created through NewProductLine.
func (p ProductLine) Validate() error {
	return p.guard.Validate(ErrProductLineIsNotConstructed)
}

// Product returns the product name.
func (p ProductLine) Product() string {
	return p.product
}

// Price returns the unit price.
func (p ProductLine) Price() int {
	return p.price
}

// Quantity returns the number of units.
func (p ProductLine) Quantity() int {
	return p.quantity
}

func (p ProductLine) String() string {
	return fmt.Sprintf("ProductLine(%s, price=%d, quantity=%d)", p.product, p.price, p.quantity)
}

func (p *ProductLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	p.quantity = quantity
	return nil
}

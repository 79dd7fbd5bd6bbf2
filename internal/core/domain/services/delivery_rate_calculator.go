package services

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/report"
)

// ErrZeroTotalQuantity is returned when an order has no units to spread its delivery cost over.
var ErrZeroTotalQuantity = errors.New("order total quantity is zero")

// DeliveryRateCalculator allocates the delivery (highway) cost of an order to its units.
type DeliveryRateCalculator struct{}

// NewDeliveryRateCalculator creates a new DeliveryRateCalculator instance.
func NewDeliveryRateCalculator() DeliveryRateCalculator {
	return DeliveryRateCalculator{}
}

// Calculate returns floor(highwayCost / totalQuantity).
//
// Floor, not truncation: highway costs are negative, so an order with cost -100
// and 3 units gets -34 per unit, not -33.
//
// Example usage:
//
//	calc := NewDeliveryRateCalculator()
//	rate, err := calc.Calculate(o) // o: highway cost -30, 3 units
//	if errors.Is(err, ErrZeroTotalQuantity) {
//	    // The order has no units to carry the cost
//	    return
//	}
//	// rate == -10
func (c DeliveryRateCalculator) Calculate(o *order.Order) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	total := o.TotalQuantity()
	if total == 0 {
		return 0, fmt.Errorf("order %d: %w", o.ID(), ErrZeroTotalQuantity)
	}

	return floorDiv(o.HighwayCost(), total), nil
}

// WarehouseRates returns, for each warehouse, the rate of the first order shipped
// from it. Warehouses appear in the order they are first seen.
//
// Later orders of the same warehouse are skipped even when their rate differs.
func (c DeliveryRateCalculator) WarehouseRates(orders []*order.Order) ([]report.WarehouseRate, error) {
	rates := make([]report.WarehouseRate, 0)
	seen := make(map[string]struct{})

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[o.WarehouseName()]; ok {
			continue
		}

		rate, err := c.Calculate(o)
		if err != nil {
			return nil, err
		}

		seen[o.WarehouseName()] = struct{}{}
		rates = append(rates, report.WarehouseRate{WarehouseName: o.WarehouseName(), Rate: rate})
	}

	return rates, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

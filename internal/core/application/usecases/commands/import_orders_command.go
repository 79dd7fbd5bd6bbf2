package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

// ImportOrdersCommand carries a batch of ledger orders to store in one transaction.
//
// Example:
//
//	orders, err := orderjson.Decode(r)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewImportOrdersCommand(orders)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	orders []*order.Order

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand validates the batch: it must be non-empty, every order
// must be constructed and order ids must be unique within the batch.
func NewImportOrdersCommand(orders []*order.Order) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrders(orders); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// Orders returns the batch in input order.
func (c ImportOrdersCommand) Orders() []*order.Order {
	return c.orders
}

func (c *ImportOrdersCommand) setOrders(orders []*order.Order) error {
	if len(orders) == 0 {
		return errs.NewValueIsRequiredError("orders")
	}

	seen := make(map[int64]struct{}, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orders[%d]", i), err)
		}
		if _, ok := seen[o.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("orders[%d]", i),
				fmt.Errorf("%w: %d", ErrDuplicateOrderID, o.ID()),
			)
		}
		seen[o.ID()] = struct{}{}
	}

	c.orders = orders
	return nil
}

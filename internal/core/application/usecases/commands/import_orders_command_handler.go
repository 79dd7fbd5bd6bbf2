package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// ImportOrdersCommandHandler stores a batch of orders atomically: either every
// order of the batch lands in the ledger or none does.
type ImportOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	metrics    ports.ReportMetrics
}

func NewImportOrdersCommandHandler(uowFactory OrderUoWFactory, metrics ports.ReportMetrics) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle rejects the whole batch with ErrDuplicateOrderID when an order id is
// already in the ledger.
func (h ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	for _, o := range cmd.Orders() {
		_, err := repo.Get(ctx, o.ID())
		switch {
		case err == nil:
			return fmt.Errorf("%w: %d", ErrDuplicateOrderID, o.ID())
		case !errors.Is(err, errs.ErrObjectNotFound):
			return err
		}

		if err = repo.Add(ctx, o); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.OrdersImported(len(cmd.Orders()))
	return nil
}

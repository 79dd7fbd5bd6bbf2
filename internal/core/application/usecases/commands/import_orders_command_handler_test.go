package commands_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order/ordertest"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ledger := ordertest.Ledger(t)
	cmd, err := commands.NewImportOrdersCommand(ledger)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	for _, o := range ledger {
		repo.On("Get", ctx, o.ID()).Return(nil, errs.NewObjectNotFoundError("orderID", o.ID())).Once()
		repo.On("Add", ctx, o).Return(nil).Once()
	}

	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	metrics := new(MockReportMetrics)
	metrics.On("OrdersImported", len(ledger)).Once()

	h := commands.NewImportOrdersCommandHandler(factory, metrics)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewImportOrdersCommandHandler(new(MockOrderUoWFactory), new(MockReportMetrics))
	err := h.Handle(t.Context(), commands.ImportOrdersCommand{})
	require.ErrorIs(t, err, commands.ErrImportOrdersCommandIsNotConstructed)
}

func TestImportOrdersCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewImportOrdersCommand(ordertest.Ledger(t))

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportOrdersCommandHandler(factory, new(MockReportMetrics))
	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	uow.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_ExistingOrder(t *testing.T) {
	ctx := t.Context()
	ledger := ordertest.Ledger(t)
	cmd, _ := commands.NewImportOrdersCommand(ledger)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ledger[0].ID()).Return(nil, errs.NewObjectNotFoundError("orderID", ledger[0].ID())).Once()
	repo.On("Add", ctx, ledger[0]).Return(nil).Once()
	repo.On("Get", ctx, ledger[1].ID()).Return(ledger[1], nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportOrdersCommandHandler(factory, new(MockReportMetrics))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDuplicateOrderID)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	ledger := ordertest.Ledger(t)
	cmd, _ := commands.NewImportOrdersCommand(ledger)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ledger[0].ID()).Return(nil, errors.New("connection reset")).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportOrdersCommandHandler(factory, new(MockReportMetrics))
	require.EqualError(t, h.Handle(ctx, cmd), "connection reset")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestImportOrdersCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	ledger := ordertest.Ledger(t)[:1]
	cmd, _ := commands.NewImportOrdersCommand(ledger)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ledger[0].ID()).Return(nil, errs.NewObjectNotFoundError("orderID", ledger[0].ID())).Once()
	repo.On("Add", ctx, ledger[0]).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	metrics := new(MockReportMetrics)
	h := commands.NewImportOrdersCommandHandler(factory, metrics)
	require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	metrics.AssertNotCalled(t, "OrdersImported", mock.Anything)
}

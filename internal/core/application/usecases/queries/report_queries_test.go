package queries_test

import (
	"context"
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/order/ordertest"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func TestGetReportQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return(ordertest.Ledger(t), nil).Once()

	h := queries.NewGetReportQueryHandler(reader, services.NewReportBuilder())
	rep, err := h.Handle(ctx, queries.NewGetReportQuery())

	require.NoError(t, err)
	assert.InDelta(t, 1728.75, rep.AverageOrderProfit, 1e-9)
	assert.Len(t, rep.OrderProfits, 4)
	reader.AssertExpectations(t)
}

func TestGetReportQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return(nil, errors.New("boom")).Once()

	h := queries.NewGetReportQueryHandler(reader, services.NewReportBuilder())
	_, err := h.Handle(ctx, queries.NewGetReportQuery())
	require.EqualError(t, err, "boom")
}

func TestGetReportQueryHandler_Handle_EmptyLedger(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()

	h := queries.NewGetReportQueryHandler(reader, services.NewReportBuilder())
	_, err := h.Handle(ctx, queries.NewGetReportQuery())
	require.ErrorIs(t, err, services.ErrNoOrders)
}

func TestGetReportQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewGetReportQueryHandler(new(MockOrderReader), services.NewReportBuilder())
	_, err := h.Handle(t.Context(), queries.GetReportQuery{})
	require.ErrorIs(t, err, queries.ErrGetReportQueryIsNotConstructed)
}

func TestNewGetWarehouseCategoriesQuery(t *testing.T) {
	q, err := queries.NewGetWarehouseCategoriesQuery("Мордор")
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, "Мордор", q.WarehouseName())

	_, err = queries.NewGetWarehouseCategoriesQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetWarehouseCategoriesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return(ordertest.Ledger(t), nil).Once()

	q, _ := queries.NewGetWarehouseCategoriesQuery("Мордор")
	h := queries.NewGetWarehouseCategoriesQueryHandler(reader, services.NewReportBuilder())
	rows, err := h.Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "билет в Израиль", rows[0].Product)
	assert.Equal(t, report.CategoryB, rows[0].Category)
	assert.Equal(t, "статуэтка Ленина", rows[1].Product)
	assert.Equal(t, report.CategoryC, rows[1].Category)
	for _, r := range rows {
		assert.Equal(t, "Мордор", r.WarehouseName)
	}
}

func TestGetWarehouseCategoriesQueryHandler_Handle_UnknownWarehouse(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return(ordertest.Ledger(t), nil).Once()

	q, _ := queries.NewGetWarehouseCategoriesQuery("Шир")
	h := queries.NewGetWarehouseCategoriesQueryHandler(reader, services.NewReportBuilder())
	_, err := h.Handle(ctx, q)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

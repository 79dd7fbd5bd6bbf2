package services_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/order/ordertest"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBuilder_Build(t *testing.T) {
	builder := services.NewReportBuilder()

	t.Run("should build every stage", func(t *testing.T) {
		r, err := builder.Build(ordertest.Ledger(t))

		require.NoError(t, err)
		assert.Len(t, r.WarehouseRates, 3)
		assert.Len(t, r.LineItems, 7)
		assert.Len(t, r.ProductStats, 4)
		assert.Len(t, r.OrderProfits, 4)
		assert.InDelta(t, 1728.75, r.AverageOrderProfit, 1e-9)
		assert.Len(t, r.WarehouseStats, 6)
		assert.Len(t, r.Accumulated, 6)
		require.Len(t, r.Categories, 6)

		for _, row := range r.Categories {
			require.NoError(t, row.Category.Validate())
		}
		for _, row := range r.Accumulated {
			assert.Equal(t, report.UnknownCategory, row.Category)
		}

		leto := r.CategoriesOf("отель Лето")
		require.Len(t, leto, 1)
		assert.InDelta(t, 100.0, leto[0].PercentProfitProductOfWarehouse, 1e-9)
		assert.Equal(t, report.CategoryC, leto[0].Category)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		first, err := builder.Build(ordertest.Ledger(t))
		require.NoError(t, err)
		second, err := builder.Build(ordertest.Ledger(t))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should fail on empty ledger", func(t *testing.T) {
		_, err := builder.Build(nil)

		require.ErrorIs(t, err, services.ErrNoOrders)
	})

	t.Run("should abort on degenerate warehouse", func(t *testing.T) {
		orders := append(ordertest.Ledger(t),
			ordertest.MustOrder(t, 1, "Шир", -10, ordertest.Line{Product: "трубка", Price: 10, Quantity: 1}))

		r, err := builder.Build(orders)

		require.ErrorIs(t, err, services.ErrZeroWarehouseProfit)
		assert.Empty(t, r.Categories)
	})

	t.Run("should reject unconstructed orders", func(t *testing.T) {
		_, err := builder.Build([]*order.Order{nil})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

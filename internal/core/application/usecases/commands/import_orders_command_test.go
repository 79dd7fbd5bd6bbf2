package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/order/ordertest"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImportOrdersCommand(t *testing.T) {
	t.Run("valid batch", func(t *testing.T) {
		ledger := ordertest.Ledger(t)

		cmd, err := commands.NewImportOrdersCommand(ledger)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, ledger, cmd.Orders())
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := commands.NewImportOrdersCommand(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("duplicate id in batch", func(t *testing.T) {
		a := ordertest.MustOrder(t, 7, "w", -1, ordertest.Line{Product: "a", Price: 1, Quantity: 1})
		b := ordertest.MustOrder(t, 7, "v", -2, ordertest.Line{Product: "b", Price: 2, Quantity: 1})

		_, err := commands.NewImportOrdersCommand([]*order.Order{a, b})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orders[1]")
		assert.Contains(t, err.Error(), "duplicate order id: 7")
	})

	t.Run("unconstructed order", func(t *testing.T) {
		_, err := commands.NewImportOrdersCommand([]*order.Order{{}})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestImportOrdersCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.ImportOrdersCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrImportOrdersCommandIsNotConstructed)
}

package csvsink_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"warehouse/internal/adapters/out/csvsink"
	"warehouse/internal/core/domain/model/order/ordertest"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		in   any
		want string
	}{
		{in: "Мордор", want: "Мордор"},
		{in: -10, want: "-10"},
		{in: int64(11973), want: "11973"},
		{in: 1728.75, want: "1728.75"},
		{in: 100.0, want: "100"},
		{in: a + b, want: "0.30000000000000004"},
		{in: nil, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, csvsink.FormatCell(tt.in))
	}
}

func TestWriter_WritesEveryTable(t *testing.T) {
	rep, err := services.NewReportBuilder().Build(ordertest.Ledger(t))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "results", "nested")
	w := csvsink.NewWriter(dir)
	require.NoError(t, w.Write(context.Background(), "run", rep.Tables()))

	for _, table := range rep.Tables() {
		records := readCSV(t, filepath.Join(dir, table.Name+".csv"))
		require.Len(t, records, len(table.Rows)+1, table.Name)
		assert.Equal(t, table.Columns, records[0], table.Name)
	}

	orders := readCSV(t, filepath.Join(dir, "03_orders_profits.csv"))
	assert.Equal(t, [][]string{
		{"order_id", "order_profit"},
		{"11973", "3980"},
		{"33684", "1980"},
		{"62239", "985"},
		{"85794", "-30"},
	}, orders)

	average := readCSV(t, filepath.Join(dir, "04_average_orders_profit.csv"))
	assert.Equal(t, []string{"Average orders profit", "1728.75"}, average[1])
}

func TestWriter_OverwritesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	w := csvsink.NewWriter(dir)
	ctx := context.Background()

	long, err := services.NewReportBuilder().Build(ordertest.Ledger(t))
	require.NoError(t, err)
	require.NoError(t, w.Write(ctx, "first", long.Tables()))

	short, err := services.NewReportBuilder().Build(ordertest.Ledger(t)[2:3])
	require.NoError(t, err)
	require.NoError(t, w.Write(ctx, "second", short.Tables()))

	records := readCSV(t, filepath.Join(dir, "03_orders_profits.csv"))
	assert.Len(t, records, 2)
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := services.NewReportBuilder().Build(ordertest.Ledger(t))
	require.NoError(t, err)

	err = csvsink.NewWriter(t.TempDir()).Write(ctx, "run", rep.Tables())
	require.ErrorIs(t, err, context.Canceled)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

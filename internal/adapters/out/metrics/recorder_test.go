package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warehouse/internal/adapters/out/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := metrics.NewRecorder()

	r.ReportGenerated(4, 20*time.Millisecond)
	r.ReportGenerated(2, 10*time.Millisecond)
	r.ReportFailed("build")
	r.OrdersImported(3)

	count := func(name string) int {
		n, err := testutil.GatherAndCount(r.Registry(), name)
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, 1, count("warehouse_report_run_duration_seconds"))
	assert.Equal(t, 1, count("warehouse_orders_imported_total"))
	assert.Equal(t, 2, count("warehouse_report_runs_total"))
	assert.Equal(t, 1, count("warehouse_report_failures_total"))
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.ReportGenerated(4, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "warehouse_report_last_run_orders 4")
	assert.Contains(t, string(body), `warehouse_report_runs_total{status="success"} 1`)
}

package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"warehouse/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.False(t, cfg.XLSXEnabled)
	assert.Equal(t, "0 0 * * * *", cfg.ReportSchedule)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RESULTS_DIR=out\nXLSX_ENABLED=true\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"RESULTS_DIR", "XLSX_ENABLED", "LOG_LEVEL"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.ResultsDir)
	assert.True(t, cfg.XLSXEnabled)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9000\n"), 0o600))
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort)
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	t.Setenv("XLSX_ENABLED", "sometimes")

	_, err := cmd.LoadConfig("")
	require.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "ledger", DBSslMode: "disable",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=ledger sslmode=disable", cfg.DSN())
}

func TestConfig_SlogLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "chatty"}.SlogLevel())
}

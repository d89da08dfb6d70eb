package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "timebox-api", cfg.App.Name)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "USD", cfg.Finance.DefaultCurrency)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("FINANCE_DEFAULT_CURRENCY", "cop")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "COP", cfg.Finance.DefaultCurrency)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "timebox", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/timebox?sslmode=disable", c.ConnectionString())
}

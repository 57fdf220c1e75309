package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, ":8080", cfg.HTTP.Addr())
	assert.Equal(t, "service_orders", cfg.DynamoDB.ServiceOrdersTable)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, 10*time.Second, cfg.Stock.Timeout)
	assert.False(t, cfg.Stock.Mock)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("SERVICE_ORDERS_TABLE", "os_test")
	t.Setenv("STOCK_SERVICE_URL", "http://stock:8081/")
	t.Setenv("STOCK_SERVICE_TIMEOUT", "750ms")
	t.Setenv("STOCK_SERVICE_MOCK", "Yes")
	t.Setenv("STOCK_WEBHOOK_TOKEN", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
	assert.Equal(t, "os_test", cfg.DynamoDB.ServiceOrdersTable)
	assert.Equal(t, "http://stock:8081", cfg.Stock.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Stock.Timeout)
	assert.True(t, cfg.Stock.Mock)
	assert.Equal(t, "s3cret", cfg.Stock.WebhookToken)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Setenv("STOCK_SERVICE_TIMEOUT", "-1s")
		_, err := Load()
		assert.Error(t, err)
	})
}

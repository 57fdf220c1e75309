package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the service settings. Values come from the environment
// (optionally seeded from a .env file loaded by godotenv) through viper.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DynamoDB DynamoDBConfig
	Stock    StockConfig
}

type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Port int
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DynamoDBConfig points at AWS or at a local DynamoDB when Endpoint is set.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string

	ServiceOrdersTable string
	VehiclesTable      string
	ServicesTable      string
	StockItemsTable    string
}

type StockConfig struct {
	BaseURL      string
	Timeout      time.Duration
	Mock         bool
	WebhookToken string
}

// Load reads the configuration. Missing keys fall back to local-friendly defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		HTTP: HTTPConfig{
			Port: v.GetInt("HTTP_PORT"),
		},
		DynamoDB: DynamoDBConfig{
			Region:             v.GetString("AWS_REGION"),
			AccessKeyID:        v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			ServiceOrdersTable: v.GetString("SERVICE_ORDERS_TABLE"),
			VehiclesTable:      v.GetString("VEHICLES_TABLE"),
			ServicesTable:      v.GetString("SERVICES_TABLE"),
			StockItemsTable:    v.GetString("STOCK_ITEMS_TABLE"),
		},
		Stock: StockConfig{
			BaseURL:      strings.TrimRight(v.GetString("STOCK_SERVICE_URL"), "/"),
			Timeout:      v.GetDuration("STOCK_SERVICE_TIMEOUT"),
			Mock:         isEnabled(v.GetString("STOCK_SERVICE_MOCK")),
			WebhookToken: v.GetString("STOCK_WEBHOOK_TOKEN"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %q", v.GetString("HTTP_PORT"))
	}
	if cfg.Stock.Timeout <= 0 {
		return nil, fmt.Errorf("invalid STOCK_SERVICE_TIMEOUT %q", v.GetString("STOCK_SERVICE_TIMEOUT"))
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "service-order-api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", 8080)

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("SERVICE_ORDERS_TABLE", "service_orders")
	v.SetDefault("VEHICLES_TABLE", "vehicles")
	v.SetDefault("SERVICES_TABLE", "services")
	v.SetDefault("STOCK_ITEMS_TABLE", "stock_items")

	v.SetDefault("STOCK_SERVICE_URL", "")
	v.SetDefault("STOCK_SERVICE_TIMEOUT", "10s")
	v.SetDefault("STOCK_SERVICE_MOCK", "false")
	v.SetDefault("STOCK_WEBHOOK_TOKEN", "")
}

func isEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

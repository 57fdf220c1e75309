package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "mecanica_xpto/docs"
	"mecanica_xpto/internal/adapter/http/routes"
	"mecanica_xpto/pkg/config"
	"mecanica_xpto/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Service Order API
// @version         1.0
// @description     Vehicle repair shop service orders (ordens de serviço) with budget approval and stock deduction saga, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	appLog := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Name: cfg.App.Name})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, appLog); err != nil {
		appLog.Fatal().Err(err).Msg("failed to start the application")
	}
}

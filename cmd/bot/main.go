package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/pkg/env"
	"github.com/Mhany156/telegram-bot/internal/pkg/logging"
	"github.com/Mhany156/telegram-bot/internal/shop/bootstrap"
	"github.com/joho/godotenv"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", "error", err.Error())
	}

	cfg := bootstrap.ShopConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "shop_db",
			SSlEnabled: false,
		},
		HttpPort: ":8080",
	}

	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvBotSecret, &cfg.BotSecret)

	var adminIdsRaw string
	env.TrySetFromEnv(env.EnvAdminIds, &adminIdsRaw)

	adminIds, err := env.ParseIdList(adminIdsRaw)
	if err != nil {
		logger.Error("failed to parse admin ids", "error", err.Error())
		return
	}
	cfg.AdminIds = adminIds

	if len(adminIds) == 0 {
		logger.Warn("no admin ids configured, admin commands are disabled")
	}

	app := bootstrap.NewShopApp(cfg, logger)
	if err := app.Run(mainCtx); err != nil {
		logger.Error("shop app stopped with error", "error", err.Error())
	}
}

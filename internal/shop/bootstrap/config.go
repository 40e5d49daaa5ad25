package bootstrap

import "github.com/Mhany156/telegram-bot/internal/pkg/database"

type ShopConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	AdminIds   []int64
	BotSecret  string
}

package bot

import (
	"context"

	"github.com/Mhany156/telegram-bot/internal/shop/application"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type BalanceService interface {
	RegisterUser(ctx context.Context, userId int64) error
	GetBalance(ctx context.Context, userId int64) (decimal.Decimal, error)
}

type CreditService interface {
	AddBalance(ctx context.Context, userId int64, amount decimal.Decimal) error
}

type StockService interface {
	AddItem(ctx context.Context, category string, price decimal.Decimal, credential string) (int64, error)
	ImportItems(ctx context.Context, payload string) (imported int, failed int, err error)
	ListAvailable(ctx context.Context, category string) ([]domain.CategoryStock, error)
}

type PurchaseService interface {
	BuyItem(ctx context.Context, userId int64, category string) (application.Delivery, error)
}

type HistoryService interface {
	GetUserOrders(ctx context.Context, userId int64) ([]domain.Order, error)
}

type InstructionsService interface {
	SetInstruction(ctx context.Context, category string, text string) error
	GetInstruction(ctx context.Context, category string) (string, error)
	GetAllInstructions(ctx context.Context) ([]domain.Instruction, error)
	DeleteInstruction(ctx context.Context, category string) error
}

// AdminChecker is the capability check for admin-only commands, supplied by
// configuration. It is consulted at dispatch only, never inside the cases.
type AdminChecker func(userId int64) bool

package application

import (
	"context"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type BalanceCase struct {
	balances domain.BalancesRepository
}

func NewBalanceCase(balances domain.BalancesRepository) *BalanceCase {
	return &BalanceCase{
		balances: balances,
	}
}

// RegisterUser lazily creates the zero-balance account on first interaction.
func (bc *BalanceCase) RegisterUser(ctx context.Context, userId int64) error {
	return bc.balances.EnsureUserCreated(ctx, userId)
}

func (bc *BalanceCase) GetBalance(ctx context.Context, userId int64) (decimal.Decimal, error) {
	return bc.balances.FetchBalance(ctx, userId)
}

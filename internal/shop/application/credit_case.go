package application

import (
	"context"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type CreditCase struct {
	balances domain.BalancesRepository
}

func NewCreditCase(balances domain.BalancesRepository) *CreditCase {
	return &CreditCase{
		balances: balances,
	}
}

func (cc *CreditCase) AddBalance(ctx context.Context, userId int64, amount decimal.Decimal) error {
	if userId <= 0 {
		return &domain.InvalidArgumentsError{Msg: "user id must be positive"}
	}
	if !amount.IsPositive() {
		return &domain.InvalidArgumentsError{Msg: "credit amount must be positive"}
	}

	return cc.balances.CreditBalance(ctx, userId, amount)
}

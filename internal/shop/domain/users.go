package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type BalancesRepository interface {
	// EnsureUserCreated inserts the user row with a zero balance if it is absent.
	EnsureUserCreated(ctx context.Context, userId int64) error
	// CreditBalance increases the user balance, creating the row when needed.
	CreditBalance(ctx context.Context, userId int64, amount decimal.Decimal) error
	// FetchBalance returns the current balance, zero for a never-seen user.
	FetchBalance(ctx context.Context, userId int64) (decimal.Decimal, error)
}

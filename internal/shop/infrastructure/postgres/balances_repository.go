package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BalancesRepository struct {
	queryExecutor database.QueryExecuter
}

func NewBalancesRepository(queryExecutor database.QueryExecuter) *BalancesRepository {
	return &BalancesRepository{
		queryExecutor: queryExecutor,
	}
}

func (br *BalancesRepository) EnsureUserCreated(ctx context.Context, userId int64) error {
	sql := `INSERT INTO users (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`

	_, err := br.queryExecutor.Exec(ctx, sql, userId)
	if err != nil {
		return fmt.Errorf("failed to ensure user created: %w", err)
	}

	return nil
}

func (br *BalancesRepository) CreditBalance(ctx context.Context, userId int64, amount decimal.Decimal) error {
	sql := `INSERT INTO users (user_id, balance) VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET balance = users.balance + EXCLUDED.balance`

	_, err := br.queryExecutor.Exec(ctx, sql, userId, amount)
	if err != nil {
		return fmt.Errorf("failed to credit user balance: %w", err)
	}

	return nil
}

func (br *BalancesRepository) FetchBalance(ctx context.Context, userId int64) (decimal.Decimal, error) {
	sql := `SELECT balance FROM users WHERE user_id = $1`

	var balance decimal.Decimal
	err := br.queryExecutor.QueryRow(ctx, sql, userId).Scan(&balance)

	if err != nil {
		// a never-seen user is an implicit zero-balance account
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}

		return decimal.Zero, fmt.Errorf("failed to fetch user balance: %w", err)
	}

	return balance, nil
}

func LockUserBalance(ctx context.Context, querier database.Querier, userId int64) (decimal.Decimal, error) {
	lockUserSQL := `SELECT balance FROM users WHERE user_id = $1 FOR UPDATE`

	var balance decimal.Decimal
	err := querier.QueryRow(ctx, lockUserSQL, userId).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userId)}
		}

		return decimal.Zero, fmt.Errorf("failed to lock user row: %w", err)
	}

	return balance, nil
}

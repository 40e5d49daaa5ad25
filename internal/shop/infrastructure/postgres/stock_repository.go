package postgres

import (
	"context"
	"fmt"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type StockRepository struct {
	queryExecutor database.QueryExecuter
}

func NewStockRepository(queryExecutor database.QueryExecuter) *StockRepository {
	return &StockRepository{
		queryExecutor: queryExecutor,
	}
}

func (sr *StockRepository) AddItem(ctx context.Context, category string, price decimal.Decimal, credential string) (int64, error) {
	sql := `INSERT INTO stock (category, price, credential) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := sr.queryExecutor.QueryRow(ctx, sql, category, price, credential).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stock item: %w", err)
	}

	return id, nil
}

func (sr *StockRepository) FetchAvailable(ctx context.Context, category string) ([]domain.CategoryStock, error) {
	listSQL := `SELECT category, COUNT(*), MIN(price) FROM stock
				WHERE NOT is_sold
				GROUP BY category ORDER BY category`
	args := []any{}

	if category != "" {
		listSQL = `SELECT category, COUNT(*), MIN(price) FROM stock
				   WHERE NOT is_sold AND category = $1
				   GROUP BY category ORDER BY category`
		args = append(args, category)
	}

	rows, err := sr.queryExecutor.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list available stock: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryStock
	for rows.Next() {
		var cs domain.CategoryStock
		if err := rows.Scan(&cs.Category, &cs.Available, &cs.MinPrice); err != nil {
			return nil, fmt.Errorf("failed to scan stock summary row: %w", err)
		}

		result = append(result, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stock summary rows: %w", err)
	}

	return result, nil
}

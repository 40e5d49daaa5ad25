package postgres

import (
	"context"
	"fmt"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
)

type OrdersRepository struct {
	querier database.Querier
}

func NewOrdersRepository(querier database.Querier) *OrdersRepository {
	return &OrdersRepository{
		querier: querier,
	}
}

func (or *OrdersRepository) FetchUserOrders(ctx context.Context, userId int64) ([]domain.Order, error) {
	sql := `SELECT o.id, o.stock_id, s.category, o.price_paid, o.created_at
			FROM orders o
			JOIN stock s ON s.id = o.stock_id
			WHERE o.user_id = $1
			ORDER BY o.id DESC`

	rows, err := or.querier.Query(ctx, sql, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.Id, &o.StockId, &o.Category, &o.PricePaid, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	return orders, nil
}

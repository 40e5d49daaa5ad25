package application

import (
	"context"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
)

type HistoryCase struct {
	orders domain.OrdersRepository
}

func NewHistoryCase(orders domain.OrdersRepository) *HistoryCase {
	return &HistoryCase{
		orders: orders,
	}
}

func (hc *HistoryCase) GetUserOrders(ctx context.Context, userId int64) ([]domain.Order, error) {
	return hc.orders.FetchUserOrders(ctx, userId)
}

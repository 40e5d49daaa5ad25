package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrdersRepository interface {
	FetchUserOrders(ctx context.Context, userId int64) ([]Order, error)
}

type Order struct {
	Id        int64
	StockId   int64
	Category  string
	PricePaid decimal.Decimal
	CreatedAt time.Time
}

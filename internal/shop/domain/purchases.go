package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PurchaseHandler interface {
	// HandlePurchase allocates the oldest unsold item of the category, debits
	// its price from the user balance and records the order, all within one
	// transaction. On any failure nothing is persisted.
	HandlePurchase(ctx context.Context, userId int64, category string) (Sale, error)
}

type Sale struct {
	OrderId    int64
	StockId    int64
	Category   string
	Price      decimal.Decimal
	Credential string
}

package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type StockRepository interface {
	AddItem(ctx context.Context, category string, price decimal.Decimal, credential string) (int64, error)
	// FetchAvailable summarizes unsold stock grouped by category. An empty
	// category returns all categories.
	FetchAvailable(ctx context.Context, category string) ([]CategoryStock, error)
}

type CategoryStock struct {
	Category  string
	Available int
	MinPrice  decimal.Decimal
}

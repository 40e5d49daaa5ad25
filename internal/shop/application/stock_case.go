package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type StockCase struct {
	stock domain.StockRepository
}

func NewStockCase(stock domain.StockRepository) *StockCase {
	return &StockCase{
		stock: stock,
	}
}

func (sc *StockCase) AddItem(ctx context.Context, category string, price decimal.Decimal, credential string) (int64, error) {
	if strings.TrimSpace(category) == "" {
		return 0, &domain.InvalidArgumentsError{Msg: "category must not be empty"}
	}
	if !price.IsPositive() {
		return 0, &domain.InvalidArgumentsError{Msg: "price must be positive"}
	}
	if strings.TrimSpace(credential) == "" {
		return 0, &domain.InvalidArgumentsError{Msg: "credential must not be empty"}
	}

	return sc.stock.AddItem(ctx, category, price, credential)
}

// ImportItems parses a pasted multi-line payload, one item per line in the
// form "category price credential". Blank lines and lines starting with '#'
// are skipped; malformed lines are counted and the import continues.
func (sc *StockCase) ImportItems(ctx context.Context, payload string) (imported int, failed int, err error) {
	for _, raw := range strings.Split(payload, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			failed++
			continue
		}

		price, parseErr := decimal.NewFromString(parts[1])
		if parseErr != nil {
			failed++
			continue
		}

		if _, addErr := sc.AddItem(ctx, parts[0], price, strings.TrimSpace(parts[2])); addErr != nil {
			if errors.Is(addErr, &domain.InvalidArgumentsError{}) {
				failed++
				continue
			}

			return imported, failed, addErr
		}

		imported++
	}

	return imported, failed, nil
}

func (sc *StockCase) ListAvailable(ctx context.Context, category string) ([]domain.CategoryStock, error) {
	return sc.stock.FetchAvailable(ctx, strings.TrimSpace(category))
}

package postgres

import (
	"testing"
	"time"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersRepository_FetchUserOrders(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("orders newest first", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		rows := pgxmock.NewRows([]string{"id", "stock_id", "category", "price_paid", "created_at"}).
			AddRow(int64(2), int64(11), "Spotify", decimal.NewFromInt(2), createdAt).
			AddRow(int64(1), int64(10), "Netflix", decimal.NewFromFloat(3.5), createdAt)
		mock.ExpectQuery("SELECT o.id, o.stock_id").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		repository := NewOrdersRepository(mock)
		orders, err := repository.FetchUserOrders(t.Context(), 1)

		assert.NoError(t, err)
		assert.Equal(t, []domain.Order{
			{Id: 2, StockId: 11, Category: "Spotify", PricePaid: decimal.NewFromInt(2), CreatedAt: createdAt},
			{Id: 1, StockId: 10, Category: "Netflix", PricePaid: decimal.NewFromFloat(3.5), CreatedAt: createdAt},
		}, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no orders", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		rows := pgxmock.NewRows([]string{"id", "stock_id", "category", "price_paid", "created_at"})
		mock.ExpectQuery("SELECT o.id, o.stock_id").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		repository := NewOrdersRepository(mock)
		orders, err := repository.FetchUserOrders(t.Context(), 7)

		assert.NoError(t, err)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package application

import (
	"testing"
	"time"

	mocks "github.com/Mhany156/telegram-bot/gen/mocks/shop"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHistoryCase_GetUserOrders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrdersRepository(ctrl)

	expected := []domain.Order{
		{
			Id:        1,
			StockId:   10,
			Category:  "Netflix",
			PricePaid: decimal.NewFromFloat(3.5),
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	orders.EXPECT().
		FetchUserOrders(gomock.Any(), int64(1)).
		Return(expected, nil)

	historyCase := NewHistoryCase(orders)
	result, err := historyCase.GetUserOrders(t.Context(), 1)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

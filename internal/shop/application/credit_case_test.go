package application

import (
	"testing"

	mocks "github.com/Mhany156/telegram-bot/gen/mocks/shop"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreditCase_AddBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userId int64
		amount decimal.Decimal

		prepareFn func(t *testing.T, balances *mocks.MockBalancesRepository)

		expectedErr error
	}

	tests := []testCase{
		{
			name:   "successful credit",
			userId: 1,
			amount: decimal.NewFromInt(5),
			prepareFn: func(t *testing.T, balances *mocks.MockBalancesRepository) {
				balances.EXPECT().CreditBalance(gomock.Any(), int64(1), decimal.NewFromInt(5)).
					Return(nil)
			},
			expectedErr: nil,
		},
		{
			name:        "zero amount",
			userId:      1,
			amount:      decimal.Zero,
			prepareFn:   func(t *testing.T, balances *mocks.MockBalancesRepository) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "negative amount",
			userId:      1,
			amount:      decimal.NewFromInt(-10),
			prepareFn:   func(t *testing.T, balances *mocks.MockBalancesRepository) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "non-positive user id",
			userId:      0,
			amount:      decimal.NewFromInt(5),
			prepareFn:   func(t *testing.T, balances *mocks.MockBalancesRepository) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:   "repository error",
			userId: 1,
			amount: decimal.NewFromInt(5),
			prepareFn: func(t *testing.T, balances *mocks.MockBalancesRepository) {
				balances.EXPECT().CreditBalance(gomock.Any(), int64(1), decimal.NewFromInt(5)).
					Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			balances := mocks.NewMockBalancesRepository(ctrl)
			tt.prepareFn(t, balances)

			creditCase := NewCreditCase(balances)
			err := creditCase.AddBalance(t.Context(), tt.userId, tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package postgres

import (
	"testing"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseHandler_HandlePurchase(t *testing.T) {
	t.Parallel()

	price := decimal.NewFromFloat(3.5)

	type testCase struct {
		name     string
		userId   int64
		category string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedSale domain.Sale
		expectedErr  error
	}

	tests := []testCase{
		{
			name:     "successful purchase",
			userId:   1,
			category: "Netflix",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				// AllocateStockItem
				itemRows := pgxmock.NewRows([]string{"id", "price", "credential"}).
					AddRow(int64(10), price, "a@x.com:pw1")
				mock.ExpectQuery("SELECT id, price, credential FROM stock").
					WithArgs("Netflix").
					WillReturnRows(itemRows)
				// LockUserBalance
				balanceRows := pgxmock.NewRows([]string{"balance"}).
					AddRow(decimal.NewFromInt(5))
				mock.ExpectQuery("SELECT balance FROM users").
					WithArgs(int64(1)).
					WillReturnRows(balanceRows)
				// FinalizePurchase
				mock.ExpectExec("UPDATE stock SET is_sold").
					WithArgs(int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE users SET balance").
					WithArgs(price, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				orderRows := pgxmock.NewRows([]string{"id"}).
					AddRow(int64(7))
				mock.ExpectQuery("INSERT INTO orders").
					WithArgs(int64(1), int64(10), price).
					WillReturnRows(orderRows)
				// Commit
				mock.ExpectCommit()
				// deferred rollback after commit is a no-op
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedSale: domain.Sale{
				OrderId:    7,
				StockId:    10,
				Category:   "Netflix",
				Price:      price,
				Credential: "a@x.com:pw1",
			},
		},
		{
			name:     "out of stock",
			userId:   1,
			category: "Spotify",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT id, price, credential FROM stock").
					WithArgs("Spotify").
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.OutOfStockError{},
		},
		{
			name:     "insufficient balance rolls back allocation",
			userId:   1,
			category: "Netflix",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				itemRows := pgxmock.NewRows([]string{"id", "price", "credential"}).
					AddRow(int64(10), price, "a@x.com:pw1")
				mock.ExpectQuery("SELECT id, price, credential FROM stock").
					WithArgs("Netflix").
					WillReturnRows(itemRows)
				balanceRows := pgxmock.NewRows([]string{"balance"}).
					AddRow(decimal.NewFromInt(1))
				mock.ExpectQuery("SELECT balance FROM users").
					WithArgs(int64(1)).
					WillReturnRows(balanceRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:     "unknown user",
			userId:   999,
			category: "Netflix",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				itemRows := pgxmock.NewRows([]string{"id", "price", "credential"}).
					AddRow(int64(10), price, "a@x.com:pw1")
				mock.ExpectQuery("SELECT id, price, credential FROM stock").
					WithArgs("Netflix").
					WillReturnRows(itemRows)
				mock.ExpectQuery("SELECT balance FROM users").
					WithArgs(int64(999)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:     "balance changed between lock and debit",
			userId:   1,
			category: "Netflix",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				itemRows := pgxmock.NewRows([]string{"id", "price", "credential"}).
					AddRow(int64(10), price, "a@x.com:pw1")
				mock.ExpectQuery("SELECT id, price, credential FROM stock").
					WithArgs("Netflix").
					WillReturnRows(itemRows)
				balanceRows := pgxmock.NewRows([]string{"balance"}).
					AddRow(decimal.NewFromInt(5))
				mock.ExpectQuery("SELECT balance FROM users").
					WithArgs(int64(1)).
					WillReturnRows(balanceRows)
				mock.ExpectExec("UPDATE stock SET is_sold").
					WithArgs(int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE users SET balance").
					WithArgs(price, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:     "commit error",
			userId:   1,
			category: "Netflix",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				itemRows := pgxmock.NewRows([]string{"id", "price", "credential"}).
					AddRow(int64(10), price, "a@x.com:pw1")
				mock.ExpectQuery("SELECT id, price, credential FROM stock").
					WithArgs("Netflix").
					WillReturnRows(itemRows)
				balanceRows := pgxmock.NewRows([]string{"balance"}).
					AddRow(decimal.NewFromInt(5))
				mock.ExpectQuery("SELECT balance FROM users").
					WithArgs(int64(1)).
					WillReturnRows(balanceRows)
				mock.ExpectExec("UPDATE stock SET is_sold").
					WithArgs(int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE users SET balance").
					WithArgs(price, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				orderRows := pgxmock.NewRows([]string{"id"}).
					AddRow(int64(7))
				mock.ExpectQuery("INSERT INTO orders").
					WithArgs(int64(1), int64(10), price).
					WillReturnRows(orderRows)
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			purchaseHandler := NewPurchaseHandler(database.NewDelegateTxManager(mock))
			sale, err := purchaseHandler.HandlePurchase(t.Context(), tt.userId, tt.category)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSale, sale)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

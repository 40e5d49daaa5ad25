package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	txManager database.TxManager
}

func NewPurchaseHandler(txManager database.TxManager) *PurchaseHandler {
	return &PurchaseHandler{
		txManager: txManager,
	}
}

func (ph *PurchaseHandler) HandlePurchase(ctx context.Context, userId int64, category string) (domain.Sale, error) {
	var sale domain.Sale

	err := ph.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		item, err := AllocateStockItem(ctx, executor, category)
		if err != nil {
			return err
		}

		balance, err := LockUserBalance(ctx, executor, userId)
		if err != nil {
			return err
		}

		if balance.LessThan(item.Price) {
			return &domain.InsufficientBalanceError{
				Msg: fmt.Sprintf("balance %s is less than price %s", balance, item.Price),
			}
		}

		orderId, err := FinalizePurchase(ctx, executor, userId, item)
		if err != nil {
			return err
		}

		sale = domain.Sale{
			OrderId:    orderId,
			StockId:    item.Id,
			Category:   category,
			Price:      item.Price,
			Credential: item.Credential,
		}

		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	return sale, nil
}

type allocatedItem struct {
	Id         int64
	Price      decimal.Decimal
	Credential string
}

// AllocateStockItem locks the oldest unsold item of the category. SKIP LOCKED
// keeps concurrent buyers from queueing on an item another transaction is
// already selling.
func AllocateStockItem(ctx context.Context, querier database.Querier, category string) (allocatedItem, error) {
	allocateSQL := `SELECT id, price, credential FROM stock
					WHERE category = $1 AND NOT is_sold
					ORDER BY id
					LIMIT 1
					FOR UPDATE SKIP LOCKED`

	var item allocatedItem
	err := querier.QueryRow(ctx, allocateSQL, category).Scan(&item.Id, &item.Price, &item.Credential)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return allocatedItem{}, &domain.OutOfStockError{Msg: fmt.Sprintf("no unsold item in category %s", category)}
		}

		return allocatedItem{}, fmt.Errorf("failed to allocate stock item: %w", err)
	}

	return item, nil
}

// FinalizePurchase applies the three writes of a sale: mark the item sold,
// debit the balance, append the order. Must run on the same transaction that
// allocated the item and locked the balance.
func FinalizePurchase(ctx context.Context, executor database.QueryExecuter, userId int64, item allocatedItem) (int64, error) {
	markSoldSQL := `UPDATE stock SET is_sold = TRUE WHERE id = $1 AND NOT is_sold`
	tag, err := executor.Exec(ctx, markSoldSQL, item.Id)
	if err != nil {
		return 0, fmt.Errorf("failed to mark stock item sold: %w", err)
	} else if tag.RowsAffected() == 0 {
		return 0, &domain.OutOfStockError{Msg: fmt.Sprintf("stock item %d already sold", item.Id)}
	}

	debitSQL := `UPDATE users SET balance = balance - $1 WHERE user_id = $2 AND balance >= $1`
	tag, err = executor.Exec(ctx, debitSQL, item.Price, userId)
	if err != nil {
		return 0, fmt.Errorf("failed to debit user balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return 0, &domain.InsufficientBalanceError{Msg: "insufficient balance"}
	}

	insertOrderSQL := `INSERT INTO orders (user_id, stock_id, price_paid) VALUES ($1, $2, $3) RETURNING id`
	var orderId int64
	err = executor.QueryRow(ctx, insertOrderSQL, userId, item.Id, item.Price).Scan(&orderId)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order record: %w", err)
	}

	return orderId, nil
}

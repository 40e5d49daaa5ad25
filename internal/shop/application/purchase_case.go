package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type Delivery struct {
	OrderId     int64
	Price       decimal.Decimal
	Credential  string
	Instruction string
}

type PurchaseCase struct {
	purchaseHandler domain.PurchaseHandler
	instructions    domain.InstructionsRepository
}

func NewPurchaseCase(purchaseHandler domain.PurchaseHandler, instructions domain.InstructionsRepository) *PurchaseCase {
	return &PurchaseCase{
		purchaseHandler: purchaseHandler,
		instructions:    instructions,
	}
}

func (pc *PurchaseCase) BuyItem(ctx context.Context, userId int64, category string) (Delivery, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Delivery{}, &domain.InvalidArgumentsError{Msg: "category must not be empty"}
	}

	sale, err := pc.purchaseHandler.HandlePurchase(ctx, userId, category)
	if err != nil {
		return Delivery{}, err
	}

	delivery := Delivery{
		OrderId:    sale.OrderId,
		Price:      sale.Price,
		Credential: sale.Credential,
	}

	// the sale is already committed, a missing instruction must not fail it
	instruction, err := pc.instructions.FetchInstruction(ctx, category)
	if err != nil && !errors.Is(err, &domain.InstructionNotFoundError{}) {
		return Delivery{}, err
	}
	delivery.Instruction = instruction

	return delivery, nil
}

package application

import (
	"context"
	"strings"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
)

type InstructionsCase struct {
	instructions domain.InstructionsRepository
}

func NewInstructionsCase(instructions domain.InstructionsRepository) *InstructionsCase {
	return &InstructionsCase{
		instructions: instructions,
	}
}

func (ic *InstructionsCase) SetInstruction(ctx context.Context, category string, text string) error {
	if strings.TrimSpace(category) == "" {
		return &domain.InvalidArgumentsError{Msg: "category must not be empty"}
	}
	if strings.TrimSpace(text) == "" {
		return &domain.InvalidArgumentsError{Msg: "instruction text must not be empty"}
	}

	return ic.instructions.UpsertInstruction(ctx, category, text)
}

func (ic *InstructionsCase) GetInstruction(ctx context.Context, category string) (string, error) {
	return ic.instructions.FetchInstruction(ctx, strings.TrimSpace(category))
}

func (ic *InstructionsCase) GetAllInstructions(ctx context.Context) ([]domain.Instruction, error) {
	return ic.instructions.FetchAllInstructions(ctx)
}

func (ic *InstructionsCase) DeleteInstruction(ctx context.Context, category string) error {
	if strings.TrimSpace(category) == "" {
		return &domain.InvalidArgumentsError{Msg: "category must not be empty"}
	}

	return ic.instructions.DeleteInstruction(ctx, strings.TrimSpace(category))
}

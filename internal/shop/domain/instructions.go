package domain

import "context"

type InstructionsRepository interface {
	UpsertInstruction(ctx context.Context, category string, text string) error
	// FetchInstruction returns InstructionNotFoundError when the category has
	// no instruction configured.
	FetchInstruction(ctx context.Context, category string) (string, error)
	DeleteInstruction(ctx context.Context, category string) error
	FetchAllInstructions(ctx context.Context) ([]Instruction, error)
}

type Instruction struct {
	Category string
	Text     string
}

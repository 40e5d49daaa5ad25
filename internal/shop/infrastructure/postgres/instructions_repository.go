package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type InstructionsRepository struct {
	queryExecutor database.QueryExecuter
}

func NewInstructionsRepository(queryExecutor database.QueryExecuter) *InstructionsRepository {
	return &InstructionsRepository{
		queryExecutor: queryExecutor,
	}
}

func (ir *InstructionsRepository) UpsertInstruction(ctx context.Context, category string, text string) error {
	sql := `INSERT INTO instructions (category, message_text) VALUES ($1, $2)
			ON CONFLICT (category) DO UPDATE SET message_text = EXCLUDED.message_text`

	_, err := ir.queryExecutor.Exec(ctx, sql, category, text)
	if err != nil {
		return fmt.Errorf("failed to upsert instruction: %w", err)
	}

	return nil
}

func (ir *InstructionsRepository) FetchInstruction(ctx context.Context, category string) (string, error) {
	sql := `SELECT message_text FROM instructions WHERE category = $1`

	var text string
	err := ir.queryExecutor.QueryRow(ctx, sql, category).Scan(&text)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &domain.InstructionNotFoundError{Msg: fmt.Sprintf("no instruction for category %s", category)}
		}

		return "", fmt.Errorf("failed to fetch instruction: %w", err)
	}

	return text, nil
}

func (ir *InstructionsRepository) DeleteInstruction(ctx context.Context, category string) error {
	sql := `DELETE FROM instructions WHERE category = $1`

	tag, err := ir.queryExecutor.Exec(ctx, sql, category)
	if err != nil {
		return fmt.Errorf("failed to delete instruction: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InstructionNotFoundError{Msg: fmt.Sprintf("no instruction for category %s", category)}
	}

	return nil
}

func (ir *InstructionsRepository) FetchAllInstructions(ctx context.Context) ([]domain.Instruction, error) {
	sql := `SELECT category, message_text FROM instructions ORDER BY category`

	rows, err := ir.queryExecutor.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instructions: %w", err)
	}
	defer rows.Close()

	var instructions []domain.Instruction
	for rows.Next() {
		var inst domain.Instruction
		if err := rows.Scan(&inst.Category, &inst.Text); err != nil {
			return nil, fmt.Errorf("failed to scan instruction row: %w", err)
		}

		instructions = append(instructions, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instruction rows: %w", err)
	}

	return instructions, nil
}

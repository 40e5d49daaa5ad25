package postgres

import (
	"testing"

	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionsRepository_FetchInstruction(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		category string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedText string
		expectedErr  error
	}

	tests := []testCase{
		{
			name:     "existing instruction",
			category: "Netflix",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"message_text"}).
					AddRow("Log in on the website only.")
				mock.ExpectQuery("SELECT message_text FROM instructions").
					WithArgs("Netflix").
					WillReturnRows(rows)
			},
			expectedText: "Log in on the website only.",
		},
		{
			name:     "missing instruction",
			category: "Spotify",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT message_text FROM instructions").
					WithArgs("Spotify").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.InstructionNotFoundError{},
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

			repository := NewInstructionsRepository(mock)
			text, err := repository.FetchInstruction(t.Context(), tt.category)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInstructionsRepository_DeleteInstruction(t *testing.T) {
	t.Parallel()

	t.Run("existing instruction", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectExec("DELETE FROM instructions").
			WithArgs("Netflix").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repository := NewInstructionsRepository(mock)
		err = repository.DeleteInstruction(t.Context(), "Netflix")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing instruction", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectExec("DELETE FROM instructions").
			WithArgs("Spotify").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repository := NewInstructionsRepository(mock)
		err = repository.DeleteInstruction(t.Context(), "Spotify")

		assert.ErrorIs(t, err, &domain.InstructionNotFoundError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

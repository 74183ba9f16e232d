package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/showcase/internal/database"
)

// Reset wipes the catalogue. It keeps the schema intact so the app can
// continue running; callers reseed with database.SeedDefaults if wanted.
func (s *DeckService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("reset: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"cards", "decks"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}

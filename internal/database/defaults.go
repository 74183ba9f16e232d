package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jask/showcase/internal/catalog"
	"github.com/jask/showcase/internal/database/repository"
)

// SeedDefaults loads the built-in catalogue into an empty database.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	existing, err := repository.NewDeckRepo(db).List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	f, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("default catalogue: %w", err)
	}
	if _, err := ApplyCatalog(ctx, db, f); err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}
	return nil
}

// ApplyCounts reports how many rows an ApplyCatalog call wrote.
type ApplyCounts struct {
	Decks   int
	Cards   int
	Removed int
}

// ApplyCatalog upserts every deck and card of f in one transaction. A deck
// present in f is replaced: its cards missing from f are removed. Decks not
// named in f are left alone. f should already be validated.
func ApplyCatalog(ctx context.Context, db *sql.DB, f catalog.File) (ApplyCounts, error) {
	var counts ApplyCounts
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		decks := repository.NewDeckRepo(tx)
		cards := repository.NewCardRepo(tx)
		for i, d := range f.Decks {
			row := deckRow(d, i)
			if err := decks.Upsert(ctx, row); err != nil {
				return fmt.Errorf("deck %s: %w", row.Slug, err)
			}
			counts.Decks++

			keep := make([]string, 0, len(d.Cards))
			for j, c := range d.Cards {
				card := cardRow(row, c, j)
				if err := cards.Upsert(ctx, card); err != nil {
					return fmt.Errorf("deck %s card %s: %w", row.Slug, card.Key, err)
				}
				keep = append(keep, card.ID)
				counts.Cards++
			}
			removed, err := cards.DeleteExcept(ctx, row.ID, keep)
			if err != nil {
				return fmt.Errorf("deck %s prune: %w", row.Slug, err)
			}
			counts.Removed += int(removed)
		}
		return nil
	})
	if err != nil {
		return ApplyCounts{}, err
	}
	return counts, nil
}

func deckRow(d catalog.Deck, order int) repository.Deck {
	slug := strings.ToLower(strings.TrimSpace(d.Slug))
	return repository.Deck{
		ID:                 repository.DeckID(slug),
		Slug:               slug,
		Title:              strings.TrimSpace(d.Title),
		Subtitle:           strings.TrimSpace(d.Subtitle),
		Variant:            strings.ToLower(strings.TrimSpace(d.Variant)),
		Autoplay:           catalog.Flag(d.Autoplay),
		AutoplayIntervalMS: d.AutoplayIntervalMS,
		ShowNavigation:     catalog.Flag(d.ShowNavigation),
		ShowProgress:       catalog.Flag(d.ShowProgress),
		ShowViewToggle:     catalog.Flag(d.ShowViewToggle),
		DefaultView:        strings.ToLower(strings.TrimSpace(d.DefaultView)),
		SortOrder:          order,
	}
}

func cardRow(deck repository.Deck, c catalog.Card, order int) repository.Card {
	key := strings.TrimSpace(c.Key)
	return repository.Card{
		ID:          repository.CardID(deck.Slug, key),
		DeckID:      deck.ID,
		Key:         key,
		Variant:     strings.ToLower(strings.TrimSpace(c.Variant)),
		Title:       strings.TrimSpace(c.Title),
		Description: strings.TrimSpace(c.Description),
		Icon:        strings.TrimSpace(c.Icon),
		Image:       strings.TrimSpace(c.Image),
		Category:    strings.TrimSpace(c.Category),
		Tags:        c.Tags,
		Details:     c.Details,
		SortOrder:   order,
	}
}

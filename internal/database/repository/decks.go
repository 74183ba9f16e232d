package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrDeckNotFound = errors.New("deck not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DeckRepo handles decks.
type DeckRepo struct {
	db DBTX
}

func NewDeckRepo(db DBTX) *DeckRepo { return &DeckRepo{db: db} }

func (r *DeckRepo) Upsert(ctx context.Context, d Deck) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO decks(id, slug, title, subtitle, variant, autoplay, autoplay_interval_ms,
	 show_navigation, show_progress, show_view_toggle, default_view, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 slug=excluded.slug,
	 title=excluded.title,
	 subtitle=excluded.subtitle,
	 variant=excluded.variant,
	 autoplay=excluded.autoplay,
	 autoplay_interval_ms=excluded.autoplay_interval_ms,
	 show_navigation=excluded.show_navigation,
	 show_progress=excluded.show_progress,
	 show_view_toggle=excluded.show_view_toggle,
	 default_view=excluded.default_view,
	 sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.Slug, d.Title, d.Subtitle, d.Variant, d.Autoplay, d.AutoplayIntervalMS,
		d.ShowNavigation, d.ShowProgress, d.ShowViewToggle, d.DefaultView, d.SortOrder)
	return err
}

const deckColumns = `d.id, d.slug, d.title, d.subtitle, d.variant, d.autoplay, d.autoplay_interval_ms,
	 d.show_navigation, d.show_progress, d.show_view_toggle, d.default_view, d.sort_order,
	 d.created_at, d.updated_at`

func scanDeck(s interface{ Scan(...any) error }, extra ...any) (Deck, error) {
	var d Deck
	dest := []any{&d.ID, &d.Slug, &d.Title, &d.Subtitle, &d.Variant, &d.Autoplay, &d.AutoplayIntervalMS,
		&d.ShowNavigation, &d.ShowProgress, &d.ShowViewToggle, &d.DefaultView, &d.SortOrder,
		&d.CreatedAt, &d.UpdatedAt}
	err := s.Scan(append(dest, extra...)...)
	return d, err
}

// List returns every deck with its card count, in display order.
func (r *DeckRepo) List(ctx context.Context) ([]Deck, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+deckColumns+`, COUNT(c.id)
	FROM decks d
	LEFT JOIN cards c ON c.deck_id = d.id
	GROUP BY d.id
	ORDER BY d.sort_order, d.slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Deck
	for rows.Next() {
		var count int
		d, err := scanDeck(rows, &count)
		if err != nil {
			return nil, err
		}
		d.CardCount = count
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DeckRepo) GetBySlug(ctx context.Context, slug string) (Deck, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+deckColumns+` FROM decks d WHERE d.slug = ?`, normalizeSlug(slug))
	d, err := scanDeck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Deck{}, fmt.Errorf("%w: %s", ErrDeckNotFound, slug)
	}
	return d, err
}

// DeleteAll removes every deck; cards go with them.
func (r *DeckRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM decks`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

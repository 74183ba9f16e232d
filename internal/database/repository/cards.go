package repository

import (
	"context"
	"strings"
)

// CardRepo handles cards.
type CardRepo struct {
	db DBTX
}

func NewCardRepo(db DBTX) *CardRepo { return &CardRepo{db: db} }

func (r *CardRepo) Upsert(ctx context.Context, c Card) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO cards(id, deck_id, key, variant, title, description, icon, image, category, tags, details, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 variant=excluded.variant,
	 title=excluded.title,
	 description=excluded.description,
	 icon=excluded.icon,
	 image=excluded.image,
	 category=excluded.category,
	 tags=excluded.tags,
	 details=excluded.details,
	 sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, c.ID, c.DeckID, c.Key, c.Variant, c.Title, c.Description, c.Icon, c.Image, c.Category,
		joinList(c.Tags, ","), joinList(c.Details, "\n"), c.SortOrder)
	return err
}

// ListByDeck returns a deck's cards in display order. An empty category
// means every card.
func (r *CardRepo) ListByDeck(ctx context.Context, deckID, category string) ([]Card, error) {
	q := `SELECT id, deck_id, key, variant, title, description, icon, image, category, tags, details, sort_order
	FROM cards WHERE deck_id = ?`
	args := []any{deckID}
	if category != "" {
		q += ` AND category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY sort_order, key`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Card
	for rows.Next() {
		var c Card
		var tags, details string
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Key, &c.Variant, &c.Title, &c.Description, &c.Icon,
			&c.Image, &c.Category, &tags, &details, &c.SortOrder); err != nil {
			return nil, err
		}
		c.Tags = splitList(tags, ",")
		c.Details = splitList(details, "\n")
		out = append(out, c)
	}
	return out, rows.Err()
}

// Categories returns the distinct non-empty categories of a deck in order of
// first appearance.
func (r *CardRepo) Categories(ctx context.Context, deckID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT category FROM cards
	WHERE deck_id = ? AND category <> ''
	GROUP BY category
	ORDER BY MIN(sort_order), category`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

// DeleteExcept removes the deck's cards whose ids are not in keep.
func (r *CardRepo) DeleteExcept(ctx context.Context, deckID string, keep []string) (int64, error) {
	q := `DELETE FROM cards WHERE deck_id = ?`
	args := []any{deckID}
	if len(keep) > 0 {
		q += ` AND id NOT IN (?` + strings.Repeat(", ?", len(keep)-1) + `)`
		for _, id := range keep {
			args = append(args, id)
		}
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func joinList(items []string, sep string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			clean = append(clean, it)
		}
	}
	return strings.Join(clean, sep)
}

func splitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

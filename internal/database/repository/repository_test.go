package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

const testSchema = `
CREATE TABLE decks (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    subtitle TEXT NOT NULL DEFAULT '',
    variant TEXT NOT NULL DEFAULT 'default',
    autoplay INTEGER NOT NULL DEFAULT 1,
    autoplay_interval_ms INTEGER NOT NULL DEFAULT 5000,
    show_navigation INTEGER NOT NULL DEFAULT 1,
    show_progress INTEGER NOT NULL DEFAULT 1,
    show_view_toggle INTEGER NOT NULL DEFAULT 1,
    default_view TEXT NOT NULL DEFAULT 'strip',
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
    key TEXT NOT NULL,
    variant TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    details TEXT NOT NULL DEFAULT '',
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(deck_id, key)
);`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "repo.db") + "?_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

func seedDeck(t *testing.T, db *sql.DB, slug string, order int, cards ...Card) Deck {
	t.Helper()
	ctx := context.Background()
	d := Deck{ID: DeckID(slug), Slug: slug, Title: slug, Variant: "default", Autoplay: true,
		AutoplayIntervalMS: 5000, DefaultView: "strip", SortOrder: order}
	require.NoError(t, NewDeckRepo(db).Upsert(ctx, d))
	for i, c := range cards {
		c.ID = CardID(slug, c.Key)
		c.DeckID = d.ID
		c.SortOrder = i
		require.NoError(t, NewCardRepo(db).Upsert(ctx, c))
	}
	return d
}

func TestIDsAreStable(t *testing.T) {
	require.Equal(t, DeckID("Tech"), DeckID(" tech "))
	require.NotEqual(t, DeckID("tech"), DeckID("services"))
	require.Equal(t, CardID("TECH", "git "), CardID("tech", "git"))
	require.NotEqual(t, CardID("a", "x"), CardID("b", "x"))
}

func TestDeckListCountsCards(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedDeck(t, db, "second", 1, Card{Key: "x", Title: "X"})
	seedDeck(t, db, "first", 0, Card{Key: "a", Title: "A"}, Card{Key: "b", Title: "B"})
	seedDeck(t, db, "empty", 2)

	decks, err := NewDeckRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 3)
	require.Equal(t, []string{"first", "second", "empty"}, []string{decks[0].Slug, decks[1].Slug, decks[2].Slug})
	require.Equal(t, []int{2, 1, 0}, []int{decks[0].CardCount, decks[1].CardCount, decks[2].CardCount})
}

func TestGetBySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := NewDeckRepo(db).GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, ErrDeckNotFound)
}

func TestCardListsRoundTripAndFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := seedDeck(t, db, "tech", 0,
		Card{Key: "react", Title: "React", Category: "frontend", Tags: []string{"ui", "", " web "}, Details: []string{"one", "two"}},
		Card{Key: "redis", Title: "Redis", Category: "database"},
		Card{Key: "next", Title: "Next.js", Category: "frontend"},
		Card{Key: "plain", Title: "Plain"},
	)
	repo := NewCardRepo(db)

	all, err := repo.ListByDeck(ctx, d.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, []string{"ui", "web"}, all[0].Tags)
	require.Equal(t, []string{"one", "two"}, all[0].Details)
	require.Nil(t, all[1].Tags)

	front, err := repo.ListByDeck(ctx, d.ID, "frontend")
	require.NoError(t, err)
	require.Len(t, front, 2)
	require.Equal(t, "react", front[0].Key)
	require.Equal(t, "next", front[1].Key)

	cats, err := repo.Categories(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"frontend", "database"}, cats)
}

func TestDeleteExceptAndCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := seedDeck(t, db, "x", 0, Card{Key: "a", Title: "A"}, Card{Key: "b", Title: "B"}, Card{Key: "c", Title: "C"})
	cards := NewCardRepo(db)

	n, err := cards.DeleteExcept(ctx, d.ID, []string{CardID("x", "b")})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	left, err := cards.ListByDeck(ctx, d.ID, "")
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, "b", left[0].Key)

	n, err = NewDeckRepo(db).DeleteAll(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&count))
	require.Zero(t, count)
}

func TestReposAcceptTransactions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewDeckRepo(tx).Upsert(ctx, Deck{ID: DeckID("t"), Slug: "t", Title: "T"}))
	require.NoError(t, tx.Rollback())

	_, err = NewDeckRepo(db).GetBySlug(ctx, "t")
	require.ErrorIs(t, err, ErrDeckNotFound)
}

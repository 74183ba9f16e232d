package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/showcase/internal/catalog"
	"github.com/jask/showcase/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrationsAreRepeatable(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath))
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := openTestDB(t)

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	decks, err := repository.NewDeckRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 3)
	require.Equal(t, "services", decks[0].Slug)
	require.Equal(t, 6, decks[0].CardCount)
	require.True(t, decks[0].Autoplay)
	require.Equal(t, 5000, decks[0].AutoplayIntervalMS)
	require.False(t, decks[0].CreatedAt.IsZero())

	var cards int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&cards))
	require.Equal(t, 30, cards)
}

func TestApplyCatalogReplacesDeckCards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)

	first, err := catalog.Parse(strings.NewReader(`
[[deck]]
slug = "Demo"
title = "Demo"

[[deck.card]]
key = "a"
title = "A"
tags = ["x", " y "]
details = ["one", "two"]

[[deck.card]]
key = "b"
title = "B"
`))
	require.NoError(t, err)
	counts, err := ApplyCatalog(ctx, db, first)
	require.NoError(t, err)
	require.Equal(t, ApplyCounts{Decks: 1, Cards: 2}, counts)

	second, err := catalog.Parse(strings.NewReader(`
[[deck]]
slug = "demo"
title = "Demo v2"
autoplay = false

[[deck.card]]
key = "b"
title = "B2"
`))
	require.NoError(t, err)
	counts, err = ApplyCatalog(ctx, db, second)
	require.NoError(t, err)
	require.Equal(t, ApplyCounts{Decks: 1, Cards: 1, Removed: 1}, counts)

	deck, err := repository.NewDeckRepo(db).GetBySlug(ctx, "DEMO")
	require.NoError(t, err)
	require.Equal(t, "Demo v2", deck.Title)
	require.False(t, deck.Autoplay)
	require.True(t, deck.ShowNavigation)

	cards, err := repository.NewCardRepo(db).ListByDeck(ctx, deck.ID, "")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, "B2", cards[0].Title)
	require.Equal(t, repository.CardID("demo", "b"), cards[0].ID)
}

func TestApplyCatalogRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)

	f, err := catalog.Default()
	require.NoError(t, err)
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ApplyCatalog(cctx, db, f)
	require.Error(t, err)

	var decks int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM decks").Scan(&decks))
	require.Zero(t, decks)
}

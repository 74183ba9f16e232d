package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/showcase/internal/carousel"
	"github.com/jask/showcase/internal/database"
)

func newTestService(t *testing.T) (*DeckService, *sql.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return NewDeckService(db, carousel.DefaultConfig()), db
}

func TestLoadDeckItemsAndConfig(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	svc, _ := newTestService(t)

	deck, items, cfg, err := svc.Load(ctx, "services", "")
	require.NoError(t, err)
	require.Equal(t, "Our Services", deck.Title)
	require.Len(t, items, 6)
	require.Equal(t, "ai-ml", items[0].Key)
	require.Len(t, items[0].Details, 5)
	require.Equal(t, []string{"Improved decision-making", "Operational efficiency"}, items[0].Tags)
	require.True(t, cfg.Autoplay)
	require.Equal(t, 5*time.Second, cfg.AutoplayInterval)
	require.Equal(t, carousel.ViewStrip, cfg.DefaultView)

	_, items, cfg, err = svc.Load(ctx, "tech", "")
	require.NoError(t, err)
	require.Len(t, items, 18)
	require.False(t, cfg.Autoplay)
	require.Equal(t, 3*time.Second, cfg.AutoplayInterval)
	require.Equal(t, carousel.ViewGrid, cfg.DefaultView)
	require.Equal(t, carousel.VariantCompact, cfg.Variant)

	deck, _, _, err = svc.Load(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, "services", deck.Slug)
}

func TestLoadFiltersByCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)

	_, items, _, err := svc.Load(ctx, "tech", "database")
	require.NoError(t, err)
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Key)
	}
	require.Equal(t, []string{"mongodb", "postgresql", "redis", "prisma"}, keys)

	_, items, _, err = svc.Load(ctx, "tech", "ALL")
	require.NoError(t, err)
	require.Len(t, items, 18)

	cats, err := svc.Categories(ctx, "tech")
	require.NoError(t, err)
	require.Equal(t, []string{"frontend", "backend", "database", "devops", "cloud", "tools"}, cats)
}

func TestLoadUnknownDeck(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, _, _, err := svc.Load(context.Background(), "nope", "")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestDefaultsCanDisableAutoplayGlobally(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	svc.Defaults.Autoplay = false
	svc.Defaults.DragThreshold = 20

	_, _, cfg, err := svc.Load(context.Background(), "services", "")
	require.NoError(t, err)
	require.False(t, cfg.Autoplay)
	require.Equal(t, 20.0, cfg.DragThreshold)
}

func TestImportSkipsInvalidDecks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Import(ctx, strings.NewReader(`
[[deck]]
slug = "extra"
title = "Extra"
autoplay_interval_ms = 800

[[deck.card]]
key = "one"
title = "One"

[[deck.card]]
key = "two"
title = "Two"

[[deck]]
slug = "broken"

[[deck.card]]
key = "x"
title = "X"

[[deck]]
slug = "EXTRA"
title = "Again"
`))
	require.NoError(t, err)
	require.Equal(t, 1, res.Decks)
	require.Equal(t, 2, res.Cards)
	require.Len(t, res.Errors, 2)

	decks, err := svc.Decks(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 4)

	_, items, cfg, err := svc.Load(ctx, "extra", "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 800*time.Millisecond, cfg.AutoplayInterval)
}

func TestImportRejectsUndecodableFile(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, err := svc.Import(context.Background(), strings.NewReader("[[deck"))
	require.Error(t, err)
}

func TestResetWipesAndReseeds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, db := newTestService(t)

	require.NoError(t, svc.Reset(ctx))
	decks, err := svc.Decks(ctx)
	require.NoError(t, err)
	require.Empty(t, decks)

	_, _, _, err = svc.Load(ctx, "", "")
	require.True(t, IsNotFound(err))

	require.NoError(t, database.SeedDefaults(ctx, db))
	decks, err = svc.Decks(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 3)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/showcase/internal/carousel"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHOWCASE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "showcase", "showcase.db"), cfg.Database.Path)
	require.True(t, cfg.Carousel.Autoplay)
	require.Equal(t, 5000, cfg.Carousel.AutoplayIntervalMS)
	require.Equal(t, "services", cfg.UI.Deck)
	require.Equal(t, MouseCell, cfg.UI.Mouse)
	require.Equal(t, 8.0, cfg.UI.CellWidth)

	cc := cfg.CarouselDefaults()
	require.Equal(t, carousel.ViewStrip, cc.DefaultView)
	require.Equal(t, 5*time.Second, cc.AutoplayInterval)
	require.Equal(t, carousel.DefaultDragThreshold, cc.DragThreshold)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[carousel]
autoplay = false
autoplay_interval_ms = 2500
default_view = "grid"
variant = "compact"

[ui]
deck = "tech"
mouse = "ALL"
cell_width = 0
`), 0o600))
	t.Setenv("SHOWCASE_CAROUSEL_DRAG_THRESHOLD", "30")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.False(t, cfg.Carousel.Autoplay)
	require.Equal(t, 2500, cfg.Carousel.AutoplayIntervalMS)
	require.Equal(t, 30.0, cfg.Carousel.DragThreshold)
	require.Equal(t, "tech", cfg.UI.Deck)
	require.Equal(t, MouseAll, cfg.UI.Mouse)
	require.Equal(t, 8.0, cfg.UI.CellWidth)

	cc := cfg.CarouselDefaults()
	require.Equal(t, carousel.ViewGrid, cc.DefaultView)
	require.Equal(t, carousel.VariantCompact, cc.Variant)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel\nautoplay = "), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("SHOWCASE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.Deck = "testimonials"
	cfg.Carousel.AutoplayIntervalMS = 1200
	cfg.Log.File = "/tmp/showcase.log"
	require.NoError(t, Save(cfg, ""))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/showcase/internal/carousel"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Carousel CarouselConfig `mapstructure:"carousel"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CarouselConfig is the fallback display configuration. Deck settings from
// the catalogue win where they are set.
type CarouselConfig struct {
	Autoplay           bool    `mapstructure:"autoplay"`
	AutoplayIntervalMS int     `mapstructure:"autoplay_interval_ms"`
	DragThreshold      float64 `mapstructure:"drag_threshold"`
	DefaultView        string  `mapstructure:"default_view"`
	Variant            string  `mapstructure:"variant"`
	ShowNavigation     bool    `mapstructure:"show_navigation"`
	ShowProgress       bool    `mapstructure:"show_progress"`
	ShowViewToggle     bool    `mapstructure:"show_view_toggle"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Deck      string  `mapstructure:"deck"`
	CellWidth float64 `mapstructure:"cell_width"`
	Mouse     string  `mapstructure:"mouse"`
}

// LogConfig points the log at a file while the TUI owns the terminal.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Mouse reporting modes.
const (
	MouseCell = "cell"
	MouseAll  = "all"
	MouseOff  = "off"
)

func defaultDBPath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "showcase", "showcase.db")
}

// Path returns the config file location: SHOWCASE_CONFIG or the XDG-ish default.
func Path() string {
	if p := os.Getenv("SHOWCASE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "showcase", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SHOWCASE_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("SHOWCASE_CONFIG"))
}

// LoadFile is Load with an explicit config file. An empty path searches
// ~/.config/showcase.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", defaultDBPath())
	v.SetDefault("carousel.autoplay", true)
	v.SetDefault("carousel.autoplay_interval_ms", int(carousel.DefaultAutoplayInterval/time.Millisecond))
	v.SetDefault("carousel.drag_threshold", carousel.DefaultDragThreshold)
	v.SetDefault("carousel.default_view", string(carousel.ViewStrip))
	v.SetDefault("carousel.variant", string(carousel.VariantDefault))
	v.SetDefault("carousel.show_navigation", true)
	v.SetDefault("carousel.show_progress", true)
	v.SetDefault("carousel.show_view_toggle", true)
	v.SetDefault("ui.deck", "services")
	v.SetDefault("ui.cell_width", 8.0)
	v.SetDefault("ui.mouse", MouseCell)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "showcase"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine; a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = defaultDBPath()
	}
	if c.UI.CellWidth <= 0 {
		c.UI.CellWidth = 8
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Mouse)) {
	case MouseAll:
		c.UI.Mouse = MouseAll
	case MouseOff:
		c.UI.Mouse = MouseOff
	default:
		c.UI.Mouse = MouseCell
	}
}

// CarouselDefaults converts the fallback carousel settings.
func (c Config) CarouselDefaults() carousel.Config {
	return carousel.Config{
		Variant:          carousel.ParseVariant(c.Carousel.Variant),
		Autoplay:         c.Carousel.Autoplay,
		AutoplayInterval: time.Duration(c.Carousel.AutoplayIntervalMS) * time.Millisecond,
		ShowNavigation:   c.Carousel.ShowNavigation,
		ShowProgress:     c.Carousel.ShowProgress,
		ShowViewToggle:   c.Carousel.ShowViewToggle,
		DefaultView:      carousel.ParseViewMode(c.Carousel.DefaultView),
		DragThreshold:    c.Carousel.DragThreshold,
	}
}

// Save writes the provided config to path (or Path() when empty), creating
// the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("carousel.autoplay", cfg.Carousel.Autoplay)
	v.Set("carousel.autoplay_interval_ms", cfg.Carousel.AutoplayIntervalMS)
	v.Set("carousel.drag_threshold", cfg.Carousel.DragThreshold)
	v.Set("carousel.default_view", cfg.Carousel.DefaultView)
	v.Set("carousel.variant", cfg.Carousel.Variant)
	v.Set("carousel.show_navigation", cfg.Carousel.ShowNavigation)
	v.Set("carousel.show_progress", cfg.Carousel.ShowProgress)
	v.Set("carousel.show_view_toggle", cfg.Carousel.ShowViewToggle)
	v.Set("ui.deck", cfg.UI.Deck)
	v.Set("ui.cell_width", cfg.UI.CellWidth)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

package carousel

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyKey         = errors.New("carousel: item key is empty")
	ErrDuplicateKey     = errors.New("carousel: duplicate item key")
	ErrTooManyListeners = errors.New("carousel: listener limit reached")
	ErrClosed           = errors.New("carousel: controller closed")
)

// Item is one card. Key must be unique within a carousel.
type Item struct {
	Key         string
	Variant     string
	Title       string
	Description string
	Icon        string
	Image       string
	Category    string
	Tags        []string
	Details     []string
}

type ViewMode string

const (
	ViewStrip ViewMode = "strip"
	ViewGrid  ViewMode = "grid"
)

// ParseViewMode maps config strings onto a ViewMode, defaulting to strip.
func ParseViewMode(s string) ViewMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return ViewGrid
	default:
		return ViewStrip
	}
}

type Variant string

const (
	VariantDefault  Variant = "default"
	VariantCompact  Variant = "compact"
	VariantFeatured Variant = "featured"
)

func ParseVariant(s string) Variant {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact":
		return VariantCompact
	case "featured":
		return VariantFeatured
	default:
		return VariantDefault
	}
}

// CardVariant is the variant a card is drawn with for the given view.
func (v Variant) CardVariant(mode ViewMode) Variant {
	if v == VariantFeatured {
		return VariantFeatured
	}
	if mode == ViewGrid {
		return VariantCompact
	}
	return v
}

const (
	DefaultAutoplayInterval = 5 * time.Second
	DefaultDragThreshold    = 50.0
)

// Config is the display configuration supplied with an item list.
type Config struct {
	Variant          Variant
	Autoplay         bool
	AutoplayInterval time.Duration
	ShowNavigation   bool
	ShowProgress     bool
	ShowViewToggle   bool
	DefaultView      ViewMode
	DragThreshold    float64
}

func DefaultConfig() Config {
	return Config{
		Variant:          VariantDefault,
		Autoplay:         true,
		AutoplayInterval: DefaultAutoplayInterval,
		ShowNavigation:   true,
		ShowProgress:     true,
		ShowViewToggle:   true,
		DefaultView:      ViewStrip,
		DragThreshold:    DefaultDragThreshold,
	}
}

func (c Config) normalized() Config {
	if c.Variant == "" {
		c.Variant = VariantDefault
	}
	if c.DefaultView != ViewGrid {
		c.DefaultView = ViewStrip
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = DefaultDragThreshold
	}
	c.AutoplayInterval = NormalizeInterval(c.AutoplayInterval)
	return c
}

// CleanItems drops items with empty or repeated keys, keeping the first
// occurrence. The returned error lists every dropped item; the cleaned slice
// is always usable.
func CleanItems(items []Item) ([]Item, error) {
	out := make([]Item, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	var errs []error
	for i, it := range items {
		key := strings.TrimSpace(it.Key)
		if key == "" {
			errs = append(errs, fmt.Errorf("item %d: %w", i, ErrEmptyKey))
			continue
		}
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("item %d %q: %w", i, key, ErrDuplicateKey))
			continue
		}
		seen[key] = struct{}{}
		it.Key = key
		out = append(out, it)
	}
	return out, errors.Join(errs...)
}

// IndexOf returns the position of key in items, or -1.
func IndexOf(items []Item, key string) int {
	for i, it := range items {
		if it.Key == key {
			return i
		}
	}
	return -1
}

// Normalize wraps index into [0, count). It returns 0 for an empty carousel.
func Normalize(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}

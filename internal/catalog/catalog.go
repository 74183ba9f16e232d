// Package catalog reads and validates TOML card catalogue files.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML []byte

// File is the top-level catalogue structure.
type File struct {
	Decks []Deck `toml:"deck"`
}

// Deck is one carousel. Nil flags fall back to true.
type Deck struct {
	Slug               string `toml:"slug"`
	Title              string `toml:"title"`
	Subtitle           string `toml:"subtitle"`
	Variant            string `toml:"variant"`
	Autoplay           *bool  `toml:"autoplay"`
	AutoplayIntervalMS int    `toml:"autoplay_interval_ms"`
	ShowNavigation     *bool  `toml:"show_navigation"`
	ShowProgress       *bool  `toml:"show_progress"`
	ShowViewToggle     *bool  `toml:"show_view_toggle"`
	DefaultView        string `toml:"default_view"`
	Cards              []Card `toml:"card"`
}

type Card struct {
	Key         string   `toml:"key"`
	Variant     string   `toml:"variant"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Icon        string   `toml:"icon"`
	Image       string   `toml:"image"`
	Category    string   `toml:"category"`
	Tags        []string `toml:"tags"`
	Details     []string `toml:"details"`
}

// Flag resolves an optional boolean with a true default.
func Flag(b *bool) bool {
	return b == nil || *b
}

// Parse decodes a catalogue. Unknown keys are rejected so typos surface.
func Parse(r io.Reader) (File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, fmt.Errorf("decode catalogue: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return File{}, fmt.Errorf("decode catalogue: unknown keys %s", strings.Join(keys, ", "))
	}
	return f, nil
}

// Default returns the built-in catalogue.
func Default() (File, error) {
	return Parse(bytes.NewReader(defaultTOML))
}

// DefaultTOML returns the raw built-in catalogue, for `showcase import` templates.
func DefaultTOML() []byte {
	out := make([]byte, len(defaultTOML))
	copy(out, defaultTOML)
	return out
}

// Validate reports every structural problem in f.
func Validate(f File) error {
	var errs []error
	slugs := map[string]struct{}{}
	for i, d := range f.Decks {
		slug := strings.ToLower(strings.TrimSpace(d.Slug))
		if slug == "" {
			errs = append(errs, fmt.Errorf("deck %d: slug is required", i))
			continue
		}
		if _, dup := slugs[slug]; dup {
			errs = append(errs, fmt.Errorf("deck %q: duplicate slug", slug))
		}
		slugs[slug] = struct{}{}
		if strings.TrimSpace(d.Title) == "" {
			errs = append(errs, fmt.Errorf("deck %q: title is required", slug))
		}
		if d.AutoplayIntervalMS < 0 {
			errs = append(errs, fmt.Errorf("deck %q: autoplay_interval_ms must not be negative", slug))
		}
		switch strings.ToLower(strings.TrimSpace(d.DefaultView)) {
		case "", "strip", "grid":
		default:
			errs = append(errs, fmt.Errorf("deck %q: default_view %q is not strip or grid", slug, d.DefaultView))
		}
		keys := map[string]struct{}{}
		for j, c := range d.Cards {
			key := strings.TrimSpace(c.Key)
			if key == "" {
				errs = append(errs, fmt.Errorf("deck %q card %d: key is required", slug, j))
				continue
			}
			if _, dup := keys[key]; dup {
				errs = append(errs, fmt.Errorf("deck %q card %q: duplicate key", slug, key))
			}
			keys[key] = struct{}{}
			if strings.TrimSpace(c.Title) == "" {
				errs = append(errs, fmt.Errorf("deck %q card %q: title is required", slug, key))
			}
		}
	}
	return errors.Join(errs...)
}

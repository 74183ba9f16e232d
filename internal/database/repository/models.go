package repository

import "time"

// Deck represents a deck row: one carousel and its display settings.
type Deck struct {
	ID                 string
	Slug               string
	Title              string
	Subtitle           string
	Variant            string
	Autoplay           bool
	AutoplayIntervalMS int
	ShowNavigation     bool
	ShowProgress       bool
	ShowViewToggle     bool
	DefaultView        string
	SortOrder          int
	CardCount          int // filled by List
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Card represents a card row.
type Card struct {
	ID          string
	DeckID      string
	Key         string
	Variant     string
	Title       string
	Description string
	Icon        string
	Image       string
	Category    string
	Tags        []string
	Details     []string
	SortOrder   int
}

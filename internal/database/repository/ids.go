package repository

import (
	"strings"

	"github.com/google/uuid"
)

// DeckID is the stable row id for a deck slug, so re-imports upsert.
func DeckID(slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("deck:"+normalizeSlug(slug))).String()
}

// CardID is the stable row id for a card key inside a deck.
func CardID(deckSlug, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("card:"+normalizeSlug(deckSlug)+"/"+strings.TrimSpace(key))).String()
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

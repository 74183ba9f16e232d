package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jask/showcase/internal/carousel"
	"github.com/jask/showcase/internal/catalog"
	"github.com/jask/showcase/internal/database"
	"github.com/jask/showcase/internal/database/repository"
)

// AllCategories is the category filter value that keeps every card.
const AllCategories = "all"

// DeckService supplies carousels from the catalogue.
type DeckService struct {
	DB       *sql.DB
	DeckRepo *repository.DeckRepo
	CardRepo *repository.CardRepo

	// Defaults fills in what a deck leaves unset and carries the global
	// drag threshold.
	Defaults carousel.Config
}

func NewDeckService(db *sql.DB, defaults carousel.Config) *DeckService {
	return &DeckService{
		DB:       db,
		DeckRepo: repository.NewDeckRepo(db),
		CardRepo: repository.NewCardRepo(db),
		Defaults: defaults,
	}
}

// Decks lists every deck in display order.
func (s *DeckService) Decks(ctx context.Context) ([]repository.Deck, error) {
	decks, err := s.DeckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// Load returns a deck with its cards as carousel items and its display
// configuration. An empty slug picks the first deck; an empty or "all"
// category keeps every card.
func (s *DeckService) Load(ctx context.Context, slug, category string) (repository.Deck, []carousel.Item, carousel.Config, error) {
	deck, err := s.deck(ctx, slug)
	if err != nil {
		return repository.Deck{}, nil, carousel.Config{}, err
	}
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, AllCategories) {
		category = ""
	}
	cards, err := s.CardRepo.ListByDeck(ctx, deck.ID, category)
	if err != nil {
		return repository.Deck{}, nil, carousel.Config{}, fmt.Errorf("load cards for %s: %w", deck.Slug, err)
	}
	items := make([]carousel.Item, 0, len(cards))
	for _, c := range cards {
		items = append(items, ItemFromCard(c))
	}
	return deck, items, s.ConfigFor(deck), nil
}

func (s *DeckService) deck(ctx context.Context, slug string) (repository.Deck, error) {
	if strings.TrimSpace(slug) != "" {
		return s.DeckRepo.GetBySlug(ctx, slug)
	}
	decks, err := s.Decks(ctx)
	if err != nil {
		return repository.Deck{}, err
	}
	if len(decks) == 0 {
		return repository.Deck{}, fmt.Errorf("%w: catalogue is empty", repository.ErrDeckNotFound)
	}
	return decks[0], nil
}

// ConfigFor merges a deck's settings over the service defaults. The
// defaults can switch autoplay and the optional controls off globally.
func (s *DeckService) ConfigFor(d repository.Deck) carousel.Config {
	cfg := s.Defaults
	if d.Variant != "" {
		cfg.Variant = carousel.ParseVariant(d.Variant)
	}
	if d.AutoplayIntervalMS > 0 {
		cfg.AutoplayInterval = time.Duration(d.AutoplayIntervalMS) * time.Millisecond
	}
	if d.DefaultView != "" {
		cfg.DefaultView = carousel.ParseViewMode(d.DefaultView)
	}
	cfg.Autoplay = cfg.Autoplay && d.Autoplay
	cfg.ShowNavigation = cfg.ShowNavigation && d.ShowNavigation
	cfg.ShowProgress = cfg.ShowProgress && d.ShowProgress
	cfg.ShowViewToggle = cfg.ShowViewToggle && d.ShowViewToggle
	return cfg
}

// Categories lists a deck's card categories in order of first use.
func (s *DeckService) Categories(ctx context.Context, slug string) ([]string, error) {
	deck, err := s.deck(ctx, slug)
	if err != nil {
		return nil, err
	}
	cats, err := s.CardRepo.Categories(ctx, deck.ID)
	if err != nil {
		return nil, fmt.Errorf("categories for %s: %w", deck.Slug, err)
	}
	return cats, nil
}

type ImportResult struct {
	Decks   int
	Cards   int
	Removed int
	Errors  []error
}

// Import reads a TOML catalogue. Decks that fail validation are skipped and
// reported in Errors; the rest are written in one transaction. A file that
// cannot be decoded at all is an error.
func (s *DeckService) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	f, err := catalog.Parse(r)
	if err != nil {
		return ImportResult{}, err
	}
	res := ImportResult{}
	valid := catalog.File{}
	seen := map[string]struct{}{}
	for i, d := range f.Decks {
		if err := catalog.Validate(catalog.File{Decks: []catalog.Deck{d}}); err != nil {
			res.Errors = append(res.Errors, unjoin(err)...)
			continue
		}
		slug := strings.ToLower(strings.TrimSpace(d.Slug))
		if _, dup := seen[slug]; dup {
			res.Errors = append(res.Errors, fmt.Errorf("deck %d %q: duplicate slug", i, slug))
			continue
		}
		seen[slug] = struct{}{}
		valid.Decks = append(valid.Decks, d)
	}
	if len(valid.Decks) == 0 {
		return res, nil
	}
	counts, err := database.ApplyCatalog(ctx, s.DB, valid)
	if err != nil {
		return res, fmt.Errorf("import catalogue: %w", err)
	}
	res.Decks, res.Cards, res.Removed = counts.Decks, counts.Cards, counts.Removed
	return res, nil
}

// unjoin flattens the errors.Join result of catalog.Validate into one error
// per problem.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// ItemFromCard converts a stored card into a carousel item.
func ItemFromCard(c repository.Card) carousel.Item {
	return carousel.Item{
		Key:         c.Key,
		Variant:     c.Variant,
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Image:       c.Image,
		Category:    c.Category,
		Tags:        c.Tags,
		Details:     c.Details,
	}
}

// IsNotFound reports whether err means the requested deck does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrDeckNotFound)
}

package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/database"
	"github.com/jask/showcase/internal/service"
	"github.com/jask/showcase/internal/tui"
)

// app is the state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	configPath string
	deck       string
	grid       bool

	cfg   config.Config
	db    *sql.DB
	decks *service.DeckService
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Browse card decks in a terminal carousel",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/showcase/config.toml)")
	root.Flags().StringVar(&a.deck, "deck", "", "deck to open (default ui.deck)")
	root.Flags().BoolVar(&a.grid, "grid", false, "start in grid view")

	root.AddCommand(decksCmd(a), importCmd(a), resetCmd(a))
	return root
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := a.configPath
	if path == "" {
		path = os.Getenv("SHOWCASE_CONFIG")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("seed defaults: %w", err)
	}
	a.db = db
	a.decks = service.NewDeckService(db, cfg.CarouselDefaults())
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *app) runTUI() error {
	// the terminal belongs to bubbletea while it runs
	if a.cfg.Log.File != "" {
		f, err := tea.LogToFile(a.cfg.Log.File, "showcase")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := tui.New(a.decks, a.cfg, tui.Options{Deck: a.deck, Grid: a.grid})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	switch a.cfg.UI.Mouse {
	case config.MouseAll:
		opts = append(opts, tea.WithMouseAllMotion())
	case config.MouseCell:
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(m, opts...).Run()
	fm, ok := final.(tui.Model)
	if !ok {
		fm = m
	}
	fm.Close()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

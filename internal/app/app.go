package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/deck"
	"github.com/five82/glide/internal/logging"
	"github.com/five82/glide/internal/prefs"
	"github.com/five82/glide/internal/state"
	"github.com/five82/glide/internal/ui"
)

// ErrNoDeck is returned when neither the command line nor the config names a deck.
var ErrNoDeck = errors.New("no deck given: pass a path or URL, or set deck in the config")

// Options configure the glide application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/glide/prefs.toml
	Deck         string // overrides the config's deck
	PollEvery    int    // seconds; zero uses the config value
	ShowWarnings bool
}

// Run boots the glide TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Deck != "" {
		cfg.Deck = config.ResolveDeck(opts.Deck)
	}
	if cfg.Deck == "" {
		return ErrNoDeck
	}
	if opts.ShowWarnings {
		cfg.ShowWarnings = true
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	store := &state.Store{}
	store.SetSource(cfg.Deck)
	load := Loader(cfg.Deck)

	// Populate the store before the UI starts.
	refresh(ctx, store, load, logger.Logger)

	if deck.IsRemote(cfg.Deck) {
		StartPoller(ctx, store, load, cfg.PollInterval, logger.Logger)
	} else {
		w, err := NewWatcher(cfg.Deck, func() { refresh(ctx, store, load, logger.Logger) }, logger.Logger)
		if err != nil {
			logger.Warn("live reload disabled", "error", err)
		} else {
			w.Start()
			defer func() { _ = w.Stop() }()
		}
	}

	return ui.Run(ui.Options{
		Context:      ctx,
		Store:        store,
		Config:       &cfg,
		Logger:       logger,
		ThemeName:    userPrefs.Theme,
		WarningPanel: userPrefs.WarningPanel,
		PrefsPath:    opts.PrefsPath,
	})
}

// Loader returns the LoadFunc for a deck source: an HTTP fetch for URLs and
// a file read otherwise.
func Loader(source string) LoadFunc {
	if deck.IsRemote(source) {
		fetcher := deck.NewFetcher()
		return func(ctx context.Context) (*deck.Deck, error) {
			return fetcher.Fetch(ctx, source)
		}
	}
	return func(context.Context) (*deck.Deck, error) {
		return deck.Load(source)
	}
}

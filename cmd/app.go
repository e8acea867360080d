package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/config"
	"github.com/imdyangs/past-present-future/internal/deck"
	"github.com/imdyangs/past-present-future/internal/fetcher"
	"github.com/imdyangs/past-present-future/internal/history"
	"github.com/imdyangs/past-present-future/internal/imagecache"
	"github.com/imdyangs/past-present-future/internal/imagestore"
	"github.com/imdyangs/past-present-future/internal/kv"
	"github.com/imdyangs/past-present-future/internal/oracle"
	"github.com/imdyangs/past-present-future/internal/session"
	"github.com/imdyangs/past-present-future/internal/spread"
	"github.com/imdyangs/past-present-future/internal/telemetry"
)

// app holds the wired session for one command invocation
type app struct {
	deck     *deck.Deck
	store    kv.Store
	images   *imagestore.Store
	locators *imagecache.Cache
	history  *history.Store
	client   *oracle.Client
	readings *session.Orchestrator
	drawer   *session.Drawer
}

func newApp(ctx context.Context) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := resolveDeck(deckFlag)
	if err != nil {
		return nil, err
	}
	if d.Len() < spread.Size {
		return nil, fmt.Errorf("deck %s has %d cards: %w", d.ID, d.Len(), spread.ErrCatalogTooSmall)
	}

	minDuration, err := cfg.DrawDuration()
	if err != nil {
		return nil, err
	}

	store, err := kv.Open(ctx, cfg.StoreDSN())
	if err != nil {
		return nil, fmt.Errorf("error opening store: %v", err)
	}

	client, err := oracle.NewClient(cfg.APIBase(), nil)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	web := fetcher.New(fetcher.WithRate(cfg.ProbeRate))
	observer := telemetry.Logger{L: logger.Named("telemetry")}

	a := &app{
		deck:     d,
		store:    store,
		images:   imagestore.New(cfg.ImageDir(), web),
		locators: imagecache.New(store, web, logger.Named("imagecache")),
		history:  history.New(store, cfg.HistoryWindow, logger.Named("history")),
		client:   client,
	}
	a.readings = session.NewOrchestrator(client,
		session.WithObserver(observer),
		session.WithLogger(logger.Named("session")),
	)
	a.drawer = &session.Drawer{
		DeckID:      d.ID,
		Catalog:     d.Cards(),
		Preloader:   spread.NewPreloader(a.locators, a.images, logger.Named("preload")),
		History:     a.history,
		Readings:    a.readings,
		Observer:    observer,
		Logger:      logger.Named("drawer"),
		MinDuration: minDuration,
	}
	// An explicit zero turns padding off; an empty setting keeps the default.
	if minDuration == 0 && strings.TrimSpace(cfg.MinDrawDuration) != "" {
		a.drawer.MinDuration = -1
	}
	return a, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logger.Warn("store close failed", zap.Error(err))
	}
}

// resolveDeck picks a built-in deck by id, or loads one from the deck
// library or a path. An empty name uses the configured default.
func resolveDeck(name string) (*deck.Deck, error) {
	if name == "" {
		name = cfg.DefaultDeck
	}
	if name == "" {
		name = deck.DefaultID
	}
	if d, ok := deck.Builtin(name); ok {
		return d, nil
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck directory not found: %s", deckPath)
	}
	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %v", err)
	}
	return d, nil
}

package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdyangs/past-present-future/internal/config"
	"github.com/imdyangs/past-present-future/internal/deck"
	"github.com/imdyangs/past-present-future/internal/oraclestub"
	"github.com/imdyangs/past-present-future/internal/reading"
	"github.com/imdyangs/past-present-future/internal/session"
)

const smallDeck = `
[deck]
id = "tiny"
name = "Tiny Deck"

[[major_arcana]]
no = "00"
name = "The Fool"
meaning = "Beginnings"

[[major_arcana]]
no = "01"
name = "The Magician"
meaning = "Will"

[[major_arcana]]
no = "02"
name = "The High Priestess"
meaning = "Intuition"
`

// withConfig points the package globals at a throwaway environment
func withConfig(t *testing.T, apiBase string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	deckDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(deckDir, "deck.toml"), []byte(smallDeck), 0o644))

	c := config.Default()
	c.Store = "memory:"
	c.APIBaseOverride = apiBase
	c.MinDrawDuration = "0s"

	prevCfg, prevDeck := cfg, deckFlag
	cfg, deckFlag = c, deckDir
	t.Cleanup(func() { cfg, deckFlag = prevCfg, prevDeck })
}

func TestResolveDeck(t *testing.T) {
	withConfig(t, "http://localhost:1")

	d, err := resolveDeck(deck.DefaultID)
	require.NoError(t, err)
	assert.Equal(t, 78, d.Len())

	d, err = resolveDeck(deckFlag)
	require.NoError(t, err)
	assert.Equal(t, "Tiny Deck", d.Name)

	_, err = resolveDeck(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "deck not found")
}

func TestAppRevealAndReading(t *testing.T) {
	srv := httptest.NewServer(oraclestub.NewRouter(oraclestub.Options{}, nil))
	defer srv.Close()
	withConfig(t, srv.URL)

	a, err := newApp(context.Background())
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, time.Duration(-1), a.drawer.MinDuration, "explicit zero disables padding")

	ctx := context.Background()
	s, err := a.drawer.Reveal(ctx)
	require.NoError(t, err)

	res, err := a.readings.GetReading(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Succeeded, res.State)
	assert.Equal(t, oraclestub.Model, res.Model)
	assert.Contains(t, res.Reading.Sections[0].Heading, s[0].Name)

	entries := a.history.Visible(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "tiny", entries[0].DeckID)
}

func TestAppFallsBackWhenServiceFails(t *testing.T) {
	srv := httptest.NewServer(oraclestub.NewRouter(oraclestub.Options{FailStatus: http.StatusBadGateway}, nil))
	defer srv.Close()
	withConfig(t, srv.URL)

	a, err := newApp(context.Background())
	require.NoError(t, err)
	defer a.Close()

	_, err = a.drawer.Reveal(context.Background())
	require.NoError(t, err)
	res, err := a.readings.GetReading(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.FallbackUsed, res.State)
	assert.Equal(t, reading.Notice, res.Notice)
}

func TestLibraryDecks(t *testing.T) {
	withConfig(t, "http://localhost:1")

	decks, err := libraryDecks()
	require.NoError(t, err)
	assert.Nil(t, decks, "no library yet")

	lib := config.GetDeckLibraryPath()
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "tiny"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "broken"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "tiny", "deck.toml"), []byte(smallDeck), 0o644))

	decks, err = libraryDecks()
	require.NoError(t, err)
	require.Len(t, decks, 1)
	assert.Equal(t, 3, decks["tiny"].Len())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	root := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "riderWaite", cfg.DefaultDeck)
	assert.Equal(t, 5, cfg.HistoryWindow)

	path := filepath.Join(root, "config", "ppf", "config.toml")
	assert.Equal(t, path, cfg.Path())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `default_deck = "riderWaite"`)

	assert.Equal(t, filepath.Join(root, "data", "ppf", "ppf.db"), cfg.StoreDSN())
	assert.Equal(t, filepath.Join(root, "cache", "ppf", "images"), cfg.ImageDir())
	assert.Equal(t, filepath.Join(root, "data", "tarot", "decks"), GetDeckLibraryPath())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("history_window = 9\nstore = \"memory:\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.HistoryWindow)
	assert.Equal(t, "memory:", cfg.StoreDSN())
	assert.Equal(t, "riderWaite", cfg.DefaultDeck)
	assert.Equal(t, DefaultRemoteAPIBase, cfg.RemoteAPIBase)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_base = \"http://file\"\nprobe_rate = 1.5\n"), 0644))
	t.Setenv("PPF_API_BASE", "http://env")
	t.Setenv("PPF_MIN_DRAW_DURATION", "1s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.APIBase())
	assert.Equal(t, 1.5, cfg.ProbeRate)

	d, err := cfg.DrawDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestLoadRejectsBadInput(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, os.WriteFile(path, []byte("default_deck = "), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "error decoding config file")

	require.NoError(t, os.WriteFile(path, []byte("min_draw_duration = \"soon\""), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "invalid min_draw_duration")
}

func TestAPIBase(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"remote by default", Config{}, DefaultRemoteAPIBase},
		{"localhost origin", Config{Origin: "http://localhost:5173"}, DefaultLocalAPIBase},
		{"loopback origin", Config{Origin: "127.0.0.1:3000"}, DefaultLocalAPIBase},
		{"bare host", Config{Origin: "localhost"}, DefaultLocalAPIBase},
		{"other origin", Config{Origin: "https://tarot.example.com"}, DefaultRemoteAPIBase},
		{"custom local base", Config{Origin: "localhost", LocalAPIBase: "http://127.0.0.1:9000"}, "http://127.0.0.1:9000"},
		{"override wins", Config{Origin: "localhost", APIBaseOverride: "https://api.example"}, "https://api.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.APIBase(); got != tt.want {
				t.Fatalf("APIBase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetDefaultDeck(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "ppf", "config.toml")

	require.NoError(t, SetDefaultDeck(path, "marseille"))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "marseille", cfg.DefaultDeck)
	assert.Equal(t, "200ms", cfg.MinDrawDuration)
}

func TestGetDeckPath(t *testing.T) {
	root := isolate(t)
	lib := filepath.Join(root, "data", "tarot", "decks", "thoth")
	require.NoError(t, os.MkdirAll(lib, 0755))

	got, err := GetDeckPath("thoth")
	require.NoError(t, err)
	assert.Equal(t, lib, got)

	_, err = GetDeckPath("missing-deck")
	assert.ErrorContains(t, err, "deck not found")
}

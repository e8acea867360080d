package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appName = "ppf"

// EnvPrefix prefixes every environment override, e.g. PPF_API_BASE
const EnvPrefix = "PPF_"

// Endpoint bases of the reading service
const (
	DefaultLocalAPIBase  = "http://localhost:8787"
	DefaultRemoteAPIBase = "https://hidden-wind-bd08.d65yang.workers.dev"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck     string  `toml:"default_deck" env:"DEFAULT_DECK"`
	Origin          string  `toml:"origin" env:"ORIGIN"`
	APIBaseOverride string  `toml:"api_base" env:"API_BASE"`
	LocalAPIBase    string  `toml:"local_api_base" env:"LOCAL_API_BASE"`
	RemoteAPIBase   string  `toml:"remote_api_base" env:"REMOTE_API_BASE"`
	Store           string  `toml:"store" env:"STORE"`
	ImageCacheDir   string  `toml:"image_cache_dir" env:"IMAGE_CACHE_DIR"`
	HistoryWindow   int     `toml:"history_window" env:"HISTORY_WINDOW"`
	MinDrawDuration string  `toml:"min_draw_duration" env:"MIN_DRAW_DURATION"`
	ProbeRate       float64 `toml:"probe_rate" env:"PROBE_RATE"`
	LogLevel        string  `toml:"log_level" env:"LOG_LEVEL"`
	LogFile         string  `toml:"log_file" env:"LOG_FILE"`

	path string
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultDeck:     "riderWaite",
		LocalAPIBase:    DefaultLocalAPIBase,
		RemoteAPIBase:   DefaultRemoteAPIBase,
		HistoryWindow:   5,
		MinDrawDuration: "200ms",
		ProbeRate:       5,
		LogLevel:        "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(envVar string, fallback ...string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tarot", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetDataDir returns the directory holding the local store and logs
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), appName)
}

// GetCacheDir returns the directory for downloaded images and ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// LoadConfig loads the config file from its default location
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load loads the config file at path (the default location when empty),
// creating it with defaults if it does not exist. PPF_* environment
// variables override values from the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := write(path, config); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	config.path = path

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error reading environment overrides: %v", err)
	}
	if _, err := config.DrawDuration(); err != nil {
		return nil, err
	}
	return config, nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	if c.path == "" {
		return GetConfigFilePath()
	}
	return c.path
}

// Save writes the config back to its file
func (c *Config) Save() error {
	return write(c.Path(), c)
}

func write(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}

// APIBase selects the reading service base. An explicit api_base wins;
// otherwise an origin on localhost or 127.0.0.1 selects the local base and
// anything else the remote base.
func (c *Config) APIBase() string {
	if base := strings.TrimSpace(c.APIBaseOverride); base != "" {
		return base
	}
	if isLocalOrigin(c.Origin) {
		return firstNonEmpty(c.LocalAPIBase, DefaultLocalAPIBase)
	}
	return firstNonEmpty(c.RemoteAPIBase, DefaultRemoteAPIBase)
}

func isLocalOrigin(origin string) bool {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return false
	}
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Hostname()
	} else if h, _, err := net.SplitHostPort(origin); err == nil {
		host = h
	}
	return host == "localhost" || host == "127.0.0.1"
}

// StoreDSN returns the key-value store location, defaulting to a SQLite
// file in the data directory
func (c *Config) StoreDSN() string {
	if c.Store != "" {
		return c.Store
	}
	return filepath.Join(GetDataDir(), "ppf.db")
}

// ImageDir returns where downloaded card images are kept
func (c *Config) ImageDir() string {
	if c.ImageCacheDir != "" {
		return c.ImageCacheDir
	}
	return filepath.Join(GetCacheDir(), "images")
}

// AnsiDir returns where rendered ANSI art is kept
func (c *Config) AnsiDir() string {
	return filepath.Join(GetCacheDir(), "ansi")
}

// LogPath returns the log file location
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(GetDataDir(), "ppf.log")
}

// DrawDuration parses min_draw_duration. Empty means zero.
func (c *Config) DrawDuration() (time.Duration, error) {
	if strings.TrimSpace(c.MinDrawDuration) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(c.MinDrawDuration))
	if err != nil {
		return 0, fmt.Errorf("invalid min_draw_duration %q: %v", c.MinDrawDuration, err)
	}
	return d, nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// SetDefaultDeck sets the default deck in the config file at path (the
// default location when empty)
func SetDefaultDeck(path, deckName string) error {
	if path == "" {
		path = GetConfigFilePath()
	}
	config := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return fmt.Errorf("error decoding config file: %v", err)
		}
	}

	config.DefaultDeck = deckName
	return write(path, config)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

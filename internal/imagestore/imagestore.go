package imagestore

import (
	"context"
	"crypto/md5"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/singleflight"
)

// Downloader fetches the body of a URL
type Downloader interface {
	Download(ctx context.Context, rawURL string) ([]byte, string, error)
}

// Store keeps downloaded card images on disk, one file per URL
type Store struct {
	dir        string
	downloader Downloader
	group      singleflight.Group
}

// New creates a Store rooted at dir
func New(dir string, downloader Downloader) *Store {
	return &Store{dir: dir, downloader: downloader}
}

// Dir returns the cache directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the cached file for rawURL if it has been fetched
func (s *Store) Path(rawURL string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(s.dir, cacheName(rawURL)+".*"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// Fetch makes sure the bytes behind rawURL are on disk. Concurrent fetches
// of the same URL share one download.
func (s *Store) Fetch(ctx context.Context, rawURL string) error {
	if _, ok := s.Path(rawURL); ok {
		return nil
	}

	_, err, _ := s.group.Do(rawURL, func() (any, error) {
		if _, ok := s.Path(rawURL); ok {
			return nil, nil
		}
		return nil, s.download(ctx, rawURL)
	})
	return err
}

func (s *Store) download(ctx context.Context, rawURL string) error {
	body, contentType, err := s.downloader.Download(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create image cache directory: %v", err)
	}

	target := filepath.Join(s.dir, cacheName(rawURL)+extension(rawURL, contentType))
	tmp, err := os.CreateTemp(s.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close image: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("store image: %w", err)
	}
	return nil
}

// cacheName derives a stable file name from the URL
func cacheName(rawURL string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(rawURL)))
}

func extension(rawURL, contentType string) string {
	if ct := strings.TrimSpace(contentType); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			switch mediaType {
			case "image/jpeg":
				return ".jpg"
			case "image/png":
				return ".png"
			case "image/gif":
				return ".gif"
			case "image/webp":
				return ".webp"
			case "image/svg+xml":
				return ".svg"
			}
		}
	}
	ext := strings.ToLower(path.Ext(strings.SplitN(rawURL, "?", 2)[0]))
	if ext == "" || len(ext) > 5 {
		return ".img"
	}
	return ext
}

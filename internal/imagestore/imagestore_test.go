package imagestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDownloader struct {
	calls       atomic.Int32
	body        []byte
	contentType string
	err         error
}

func (f *fakeDownloader) Download(context.Context, string) ([]byte, string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, "", f.err
	}
	return f.body, f.contentType, nil
}

func TestFetchStoresOnce(t *testing.T) {
	dl := &fakeDownloader{body: []byte("jpeg"), contentType: "image/jpeg"}
	s := New(filepath.Join(t.TempDir(), "images"), dl)
	url := "https://upload.example/Fool"

	_, ok := s.Path(url)
	assert.False(t, ok)

	require.NoError(t, s.Fetch(context.Background(), url))
	require.NoError(t, s.Fetch(context.Background(), url))
	assert.EqualValues(t, 1, dl.calls.Load())

	p, ok := s.Path(url)
	require.True(t, ok)
	assert.Equal(t, ".jpg", filepath.Ext(p))
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestFetchFailureLeavesNothing(t *testing.T) {
	dl := &fakeDownloader{err: errors.New("boom")}
	s := New(t.TempDir(), dl)

	err := s.Fetch(context.Background(), "https://upload.example/a.png")
	assert.ErrorContains(t, err, "download image")
	_, ok := s.Path("https://upload.example/a.png")
	assert.False(t, ok)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", extension("https://x/a", "image/png; charset=binary"))
	assert.Equal(t, ".jpg", extension("https://x/a.jpg?width=300", ""))
	assert.Equal(t, ".img", extension("https://x/a", "application/octet-stream"))
}

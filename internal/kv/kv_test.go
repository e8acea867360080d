package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	ctx := context.Background()

	backends := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemory() },
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "ppf.db"))
			require.NoError(t, err)
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, ok, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			var seen []string
			unsubscribe := s.Subscribe("k", func(v string) { seen = append(seen, v) })

			require.NoError(t, s.Set(ctx, "k", `{"a":1}`))
			require.NoError(t, s.Set(ctx, "other", "x"))
			require.NoError(t, s.Set(ctx, "k", `{"a":2}`))

			v, ok, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"a":2}`, v)
			assert.Equal(t, []string{`{"a":1}`, `{"a":2}`}, seen)

			unsubscribe()
			unsubscribe()
			require.NoError(t, s.Set(ctx, "k", "3"))
			assert.Len(t, seen, 2)
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ppf.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tarot-history", "[]"))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, "sqlite:"+path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "tarot-history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestOpenMemoryAndClosed(t *testing.T) {
	s, err := Open(context.Background(), "memory:")
	require.NoError(t, err)
	require.IsType(t, &Memory{}, s)

	require.NoError(t, s.Close())
	_, _, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrClosed)
}

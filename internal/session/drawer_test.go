package session

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdyangs/past-present-future/internal/card"
	"github.com/imdyangs/past-present-future/internal/history"
	"github.com/imdyangs/past-present-future/internal/kv"
	"github.com/imdyangs/past-present-future/internal/spread"
	"github.com/imdyangs/past-present-future/internal/telemetry"
)

type suffixPreloader struct {
	block chan struct{}
}

func (p suffixPreloader) Preload(_ context.Context, s spread.Spread) spread.Spread {
	if p.block != nil {
		<-p.block
	}
	for i := range s {
		s[i] = s[i].WithImage("resolved/" + s[i].ID)
	}
	return s
}

// stepClock advances by step on every call
func stepClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}

func newDrawer(t *testing.T, orch *Orchestrator, hist *history.Store) (*Drawer, *[]time.Duration) {
	t.Helper()
	var slept []time.Duration
	return &Drawer{
		DeckID:    "riderWaite",
		Catalog:   []card.Card{hermit, twoCups, star, aceWands},
		Preloader: suffixPreloader{},
		History:   hist,
		Readings:  orch,
		Rand:      rand.New(rand.NewPCG(7, 8)),
		Now:       stepClock(50 * time.Millisecond),
		Sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
		NewToken: func() string { return "draw-token" },
	}, &slept
}

func TestRevealPreloadsRecordsAndPads(t *testing.T) {
	ctx := context.Background()
	hist := history.New(kv.NewMemory(), 5, nil)
	orch := NewOrchestrator(&fakeClient{text: goodText})
	rec := &recorder{}
	d, slept := newDrawer(t, orch, hist)
	d.Observer = rec

	s, err := d.Reveal(ctx)
	require.NoError(t, err)

	for _, c := range s {
		assert.Equal(t, "resolved/"+c.ID, c.Image)
	}
	assert.Equal(t, []time.Duration{150 * time.Millisecond}, *slept)

	entries := hist.All(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "riderWaite", entries[0].DeckID)
	assert.Equal(t, s.Cards(), entries[0].Cards)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), entries[0].Timestamp)

	snap := orch.Snapshot()
	assert.True(t, snap.HasSpread)
	assert.Equal(t, "draw-token", snap.Key)

	assert.Equal(t, []string{telemetry.EventReveal}, rec.snapshot())
	assert.Equal(t, []string{telemetry.SpreadTag(s.Cards())}, rec.tags[telemetry.TagSpread])
}

func TestRevealSkipsPaddingWhenSlow(t *testing.T) {
	d, slept := newDrawer(t, nil, nil)
	d.Now = stepClock(time.Second)
	_, err := d.Reveal(context.Background())
	require.NoError(t, err)
	assert.Empty(t, *slept)

	d.Now = stepClock(0)
	d.MinDuration = -1
	_, err = d.Reveal(context.Background())
	require.NoError(t, err)
	assert.Empty(t, *slept)
}

func TestRevealInvalidatesPreviousReading(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{text: goodText}
	orch := NewOrchestrator(client)
	d, _ := newDrawer(t, orch, nil)

	_, err := d.Reveal(ctx)
	require.NoError(t, err)
	_, err = orch.GetReading(ctx)
	require.NoError(t, err)

	// Same token on purpose: the reveal itself must drop the stored reply.
	_, err = d.Reveal(ctx)
	require.NoError(t, err)
	res, err := orch.GetReading(ctx)
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.EqualValues(t, 2, client.calls.Load())
}

func TestRevealRejectsOverlap(t *testing.T) {
	block := make(chan struct{})
	d, _ := newDrawer(t, nil, nil)
	d.Preloader = suffixPreloader{block: block}

	done := make(chan error)
	go func() {
		_, err := d.Reveal(context.Background())
		done <- err
	}()

	require.Eventually(t, d.drawing.Load, time.Second, time.Millisecond)
	_, err := d.Reveal(context.Background())
	assert.ErrorIs(t, err, ErrDrawInProgress)

	close(block)
	assert.NoError(t, <-done)
}

func TestRevealSmallCatalog(t *testing.T) {
	d, _ := newDrawer(t, nil, nil)
	d.Catalog = d.Catalog[:2]
	_, err := d.Reveal(context.Background())
	assert.ErrorIs(t, err, spread.ErrCatalogTooSmall)
}

func TestRevealSleepHonoursContext(t *testing.T) {
	d := &Drawer{Catalog: []card.Card{hermit, twoCups, star}, MinDuration: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Reveal(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewTokenIsUnique(t *testing.T) {
	assert.NotEqual(t, NewToken(), NewToken())
	assert.Len(t, NewToken(), 36)
}

package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/card"
	"github.com/imdyangs/past-present-future/internal/history"
	"github.com/imdyangs/past-present-future/internal/spread"
	"github.com/imdyangs/past-present-future/internal/telemetry"
)

// DefaultMinDrawDuration keeps the drawing state visible long enough to
// register, even when every image is already cached.
const DefaultMinDrawDuration = 200 * time.Millisecond

// ErrDrawInProgress is returned by Reveal while another draw is running
var ErrDrawInProgress = errors.New("session: draw already in progress")

// Preloader readies a spread's imagery
type Preloader interface {
	Preload(ctx context.Context, s spread.Spread) spread.Spread
}

// HistoryAppender records completed draws
type HistoryAppender interface {
	Append(ctx context.Context, e history.Entry) error
}

// Drawer performs the reveal action
type Drawer struct {
	DeckID      string
	Catalog     []card.Card
	Preloader   Preloader
	History     HistoryAppender
	Readings    *Orchestrator
	Observer    telemetry.Observer
	Logger      *zap.Logger
	// MinDuration pads Reveal. Zero means DefaultMinDrawDuration and a
	// negative value disables padding.
	MinDuration time.Duration

	// Rand, Now, Sleep and NewToken default to the real implementations.
	Rand     *rand.Rand
	Now      func() time.Time
	Sleep    func(ctx context.Context, d time.Duration) error
	NewToken func() string

	drawing atomic.Bool
}

// Reveal draws a new spread, waits for its imagery, records it in the
// history and hands it to the reading orchestrator. The returned spread
// carries resolved image URLs.
func (d *Drawer) Reveal(ctx context.Context) (spread.Spread, error) {
	if !d.drawing.CompareAndSwap(false, true) {
		return spread.Spread{}, ErrDrawInProgress
	}
	defer d.drawing.Store(false)

	now := d.Now
	if now == nil {
		now = time.Now
	}
	observer := telemetry.Safe(d.Observer)
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := now()
	if d.Readings != nil {
		d.Readings.Invalidate()
	}

	drawn, err := spread.Draw(d.Catalog, d.Rand)
	if err != nil {
		return spread.Spread{}, err
	}

	ready := drawn
	if d.Preloader != nil {
		ready = d.Preloader.Preload(ctx, drawn)
	}

	if wait := d.minDuration() - now().Sub(start); wait > 0 {
		if err := d.sleep(ctx, wait); err != nil {
			return spread.Spread{}, err
		}
	}

	if d.History != nil {
		entry := history.Entry{Timestamp: start, DeckID: d.DeckID, Cards: ready.Cards()}
		if err := d.History.Append(ctx, entry); err != nil {
			logger.Warn("history not saved", zap.Error(err))
		}
	}

	if d.Readings != nil {
		d.Readings.SetSpread(ready, d.token())
	}

	observer.Event(telemetry.EventReveal)
	observer.Tag(telemetry.TagSpread, telemetry.SpreadTag(ready.Cards()))
	observer.Tag(telemetry.TagDeck, d.DeckID)
	logger.Debug("spread revealed",
		zap.String("deck", d.DeckID),
		zap.Strings("cards", ready.IDs()),
		zap.Duration("elapsed", now().Sub(start)),
	)
	return ready, nil
}

func (d *Drawer) minDuration() time.Duration {
	if d.MinDuration < 0 {
		return 0
	}
	if d.MinDuration == 0 {
		return DefaultMinDrawDuration
	}
	return d.MinDuration
}

func (d *Drawer) sleep(ctx context.Context, wait time.Duration) error {
	if d.Sleep != nil {
		return d.Sleep(ctx, wait)
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Drawer) token() string {
	if d.NewToken != nil {
		return d.NewToken()
	}
	return NewToken()
}

// NewToken returns a fresh reading cache token
func NewToken() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Package session ties drawing and reading together: the Drawer produces
// ready-to-show spreads and the Orchestrator turns the current spread into
// a reading, remote when possible and local otherwise.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/imdyangs/past-present-future/internal/oracle"
	"github.com/imdyangs/past-present-future/internal/reading"
	"github.com/imdyangs/past-present-future/internal/spread"
	"github.com/imdyangs/past-present-future/internal/telemetry"
)

var (
	// ErrNoSpread is returned when a reading is requested before a draw
	ErrNoSpread = errors.New("session: no spread drawn")
	// ErrSuperseded is returned when a new draw replaced the spread while
	// its reading was in flight. The result is discarded.
	ErrSuperseded = errors.New("session: spread replaced during request")
)

// State is the reading lifecycle
type State int

const (
	Idle State = iota
	Requesting
	Succeeded
	FallbackUsed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Requesting:
		return "requesting"
	case Succeeded:
		return "succeeded"
	case FallbackUsed:
		return "fallback"
	}
	return "unknown"
}

// Result is what the display surface shows
type Result struct {
	Reading  reading.Reading
	State    State
	Notice   string
	CacheHit bool
	Model    string
	Elapsed  time.Duration
}

// Snapshot is a point-in-time view of the orchestrator
type Snapshot struct {
	State         State
	Open          bool
	ReopenPending bool
	Key           string
	HasSpread     bool
	Last          *Result
}

// Orchestrator requests, caches and falls back readings for the current
// spread. It is safe for concurrent use.
type Orchestrator struct {
	client   oracle.Reader
	observer telemetry.Observer
	logger   *zap.Logger
	now      func() time.Time
	group    singleflight.Group

	mu            sync.Mutex
	spread        spread.Spread
	hasSpread     bool
	token         string
	storedKey     string
	storedRaw     string
	storedModel   string
	state         State
	open          bool
	reopenPending bool
	last          *Result
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithObserver sets the telemetry observer
func WithObserver(o telemetry.Observer) Option {
	return func(orch *Orchestrator) { orch.observer = telemetry.Safe(o) }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(orch *Orchestrator) {
		if l != nil {
			orch.logger = l
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(orch *Orchestrator) { orch.now = now }
}

// NewOrchestrator creates an Orchestrator around client
func NewOrchestrator(client oracle.Reader, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:   client,
		observer: telemetry.Nop{},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetSpread makes s the current spread. The stored reading is dropped so
// the next request goes to the network, even for identical cards.
func (o *Orchestrator) SetSpread(s spread.Spread, token string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spread = s
	o.hasSpread = true
	o.token = token
	o.resetLocked()
}

// Invalidate drops the current spread and its stored reading
func (o *Orchestrator) Invalidate() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spread = spread.Spread{}
	o.hasSpread = false
	o.token = ""
	o.resetLocked()
}

func (o *Orchestrator) resetLocked() {
	o.storedKey = ""
	o.storedRaw = ""
	o.storedModel = ""
	o.state = Idle
	o.open = false
	o.reopenPending = false
	o.last = nil
}

// Close hides the display surface. Closing while a request is in flight
// reopens the surface once the request settles.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open = false
	if o.state == Requesting {
		o.reopenPending = true
	}
}

// Open shows the last result again, if there is one
func (o *Orchestrator) Open() (Result, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.last == nil {
		return Result{}, false
	}
	o.open = true
	return *o.last, true
}

// Snapshot returns the current state
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	snap := Snapshot{
		State:         o.state,
		Open:          o.open,
		ReopenPending: o.reopenPending,
		HasSpread:     o.hasSpread,
	}
	if o.hasSpread {
		snap.Key = o.keyLocked()
	}
	if o.last != nil {
		last := *o.last
		snap.Last = &last
	}
	return snap
}

// keyLocked is the reading cache key: the per-draw token, or the card ids
// when no token was issued
func (o *Orchestrator) keyLocked() string {
	if o.token != "" {
		return o.token
	}
	return strings.Join(o.spread.IDs(), "")
}

// GetReading returns the reading for the current spread. A stored response
// for the same key is re-parsed without network access. Concurrent calls
// for the same key share one request. Client failures and empty replies
// yield the local fallback reading with a notice; they are never returned
// as errors.
func (o *Orchestrator) GetReading(ctx context.Context) (Result, error) {
	start := o.now()

	o.mu.Lock()
	if !o.hasSpread {
		o.mu.Unlock()
		return Result{}, ErrNoSpread
	}
	key := o.keyLocked()
	current := o.spread
	o.open = true
	o.reopenPending = false

	if o.storedKey == key && o.storedRaw != "" {
		raw, model := o.storedRaw, o.storedModel
		o.mu.Unlock()

		o.observer.Event(telemetry.EventReadingCacheHit)
		res := o.fromText(current, raw, model)
		res.CacheHit = true
		return o.settle(key, res, start)
	}

	o.state = Requesting
	o.mu.Unlock()

	o.observer.Event(telemetry.EventReadingRequested)
	o.observer.Tag(telemetry.TagSpread, telemetry.SpreadTag(current.Cards()))

	v, err, shared := o.group.Do(key, func() (any, error) {
		// A call that finished between our cache check and Do already
		// stored its reply.
		if raw, model, ok := o.stored(key); ok {
			return &oracle.Response{Model: model, Text: raw}, nil
		}
		// In-flight requests run to completion even if the caller goes away.
		resp, err := o.client.RequestReading(context.WithoutCancel(ctx), oracle.NewPayload(current))
		if err != nil {
			return nil, err
		}
		if resp == nil {
			resp = &oracle.Response{}
		}
		o.store(key, resp.Content(), resp.Model)
		return resp, nil
	})

	var res Result
	if err != nil {
		o.logger.Warn("reading request failed, using local reading",
			zap.String("key", key),
			zap.Bool("shared", shared),
			zap.Error(err),
		)
		res = o.fallback(current, reading.Notice)
	} else {
		resp := v.(*oracle.Response)
		res = o.fromText(current, resp.Content(), resp.Model)
	}
	return o.settle(key, res, start)
}

// fromText parses raw into a result, falling back when it has no sections
func (o *Orchestrator) fromText(s spread.Spread, raw, model string) Result {
	parsed := reading.Parse(raw)
	if parsed.Empty() {
		o.logger.Info("reading had no sections, using local reading", zap.Int("length", len(raw)))
		return o.fallback(s, reading.NoticeUnclear)
	}
	return Result{Reading: reading.FromParsed(parsed), State: Succeeded, Model: model}
}

func (o *Orchestrator) fallback(s spread.Spread, notice string) Result {
	return Result{
		Reading: reading.Fallback(s[spread.Past], s[spread.Present], s[spread.Future]),
		State:   FallbackUsed,
		Notice:  notice,
	}
}

// store keeps raw for key unless the spread has been replaced since
func (o *Orchestrator) store(key, raw, model string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.hasSpread && o.keyLocked() == key {
		o.storedKey = key
		o.storedRaw = raw
		o.storedModel = model
	}
}

func (o *Orchestrator) stored(key string) (raw, model string, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.storedKey == key && o.storedRaw != "" {
		return o.storedRaw, o.storedModel, true
	}
	return "", "", false
}

// settle records res as the terminal state for key, reopening the display
// surface if it was closed while the request was in flight
func (o *Orchestrator) settle(key string, res Result, start time.Time) (Result, error) {
	res.Elapsed = o.now().Sub(start)

	o.mu.Lock()
	if !o.hasSpread || o.keyLocked() != key {
		o.mu.Unlock()
		o.logger.Debug("discarding reading for replaced spread", zap.String("key", key))
		return res, ErrSuperseded
	}
	o.state = res.State
	reopened := o.reopenPending
	if reopened {
		o.reopenPending = false
		o.open = true
	}
	last := res
	o.last = &last
	o.mu.Unlock()

	if reopened {
		o.observer.Event(telemetry.EventReadingReopened)
	}
	if res.State == Succeeded {
		o.observer.Event(telemetry.EventReadingSuccess)
	} else {
		o.observer.Event(telemetry.EventReadingFallback)
	}
	o.observer.Tag(telemetry.TagWaitBucket, telemetry.WaitBucket(res.Elapsed))
	return res, nil
}

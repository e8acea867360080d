// Package telemetry is a fire-and-forget observer for product events. An
// observer never influences control flow: wrap implementations in Safe.
package telemetry

import (
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/card"
)

// Event names
const (
	EventReveal           = "reveal"
	EventReadingRequested = "reading_requested"
	EventReadingCacheHit  = "reading_cache_hit"
	EventReadingSuccess   = "reading_success"
	EventReadingFallback  = "reading_fallback"
	EventReadingReopened  = "reading_reopened"
)

// Tag keys
const (
	TagWaitBucket = "wait_bucket"
	TagSpread     = "spread"
	TagDeck       = "deck"
)

// Observer receives events and tags
type Observer interface {
	Event(name string)
	Tag(key string, values ...string)
}

// Nop discards everything
type Nop struct{}

func (Nop) Event(string)          {}
func (Nop) Tag(string, ...string) {}

// Logger reports events to a zap logger at debug level
type Logger struct {
	L *zap.Logger
}

func (o Logger) Event(name string) {
	o.L.Debug("telemetry event", zap.String("event", name))
}

func (o Logger) Tag(key string, values ...string) {
	o.L.Debug("telemetry tag", zap.String("key", key), zap.Strings("values", values))
}

type safe struct {
	next Observer
}

// Safe wraps o so that a panicking observer is contained. A nil o yields Nop.
func Safe(o Observer) Observer {
	if o == nil {
		return Nop{}
	}
	if s, ok := o.(safe); ok {
		return s
	}
	return safe{next: o}
}

func (s safe) Event(name string) {
	defer func() { _ = recover() }()
	s.next.Event(name)
}

func (s safe) Tag(key string, values ...string) {
	defer func() { _ = recover() }()
	s.next.Tag(key, values...)
}

// WaitBucket groups a wait into a coarse range, e.g. "2-5s"
func WaitBucket(d time.Duration) string {
	s := int(math.Round(math.Max(0, d.Seconds())))
	switch {
	case s <= 1:
		return "0-1s"
	case s <= 5:
		return "2-5s"
	case s <= 10:
		return "6-10s"
	case s <= 20:
		return "11-20s"
	case s <= 30:
		return "21-30s"
	}
	return "31s+"
}

// SpreadTag is a compact identifier for a three-card spread: the card ids
// (or names, when an id is missing) joined with "|". Other sizes yield "".
func SpreadTag(cards []card.Card) string {
	if len(cards) != 3 {
		return ""
	}
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		switch {
		case c.ID != "":
			parts = append(parts, c.ID)
		case c.Name != "":
			parts = append(parts, c.Name)
		}
	}
	return strings.Join(parts, "|")
}

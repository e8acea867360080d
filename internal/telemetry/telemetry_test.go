package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/imdyangs/past-present-future/internal/card"
)

func TestWaitBucket(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "0-1s"},
		{0, "0-1s"},
		{1400 * time.Millisecond, "0-1s"},
		{1500 * time.Millisecond, "2-5s"},
		{5 * time.Second, "2-5s"},
		{6 * time.Second, "6-10s"},
		{20 * time.Second, "11-20s"},
		{30 * time.Second, "21-30s"},
		{31 * time.Second, "31s+"},
		{5 * time.Minute, "31s+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WaitBucket(tt.in), tt.in.String())
	}
}

func TestSpreadTag(t *testing.T) {
	cards := []card.Card{{ID: "maj-00"}, {Name: "Nameless"}, {ID: "min-cups-02"}}
	assert.Equal(t, "maj-00|Nameless|min-cups-02", SpreadTag(cards))
	assert.Equal(t, "", SpreadTag(cards[:2]))
	assert.Equal(t, "a|c", SpreadTag([]card.Card{{ID: "a"}, {}, {ID: "c"}}))
}

type panicky struct{}

func (panicky) Event(string)          { panic("event") }
func (panicky) Tag(string, ...string) { panic("tag") }

func TestSafeContainsPanics(t *testing.T) {
	o := Safe(panicky{})
	assert.NotPanics(t, func() {
		o.Event(EventReveal)
		o.Tag(TagSpread, "x")
	})
	assert.Equal(t, Nop{}, Safe(nil))
	assert.Equal(t, o, Safe(o), "already safe observers are not rewrapped")
}

func TestLoggerObserver(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	o := Safe(Logger{L: zap.New(core)})

	o.Event(EventReadingSuccess)
	o.Tag(TagWaitBucket, "2-5s")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, EventReadingSuccess, entries[0].ContextMap()["event"])
		assert.Equal(t, TagWaitBucket, entries[1].ContextMap()["key"])
	}
}

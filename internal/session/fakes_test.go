package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/imdyangs/past-present-future/internal/card"
	"github.com/imdyangs/past-present-future/internal/oracle"
	"github.com/imdyangs/past-present-future/internal/spread"
)

const goodText = "### PAST — The Hermit (09)\nStillness.\n\n### PRESENT — Two of Cups\nMeeting.\nfor reflection — not certainty. 🌱"

var (
	hermit   = card.Card{ID: "maj-09", Arcana: card.Major, Number: "09", Name: "The Hermit", Meaning: "Solitude, inner guidance"}
	twoCups  = card.Card{ID: "min-cups-02", Arcana: card.Minor, Suit: card.Cups, Number: "02", Name: "Two of Cups", Meaning: "Partnership, mutual attraction"}
	star     = card.Card{ID: "maj-17", Arcana: card.Major, Number: "17", Name: "The Star", Meaning: "Hope, renewal"}
	aceWands = card.Card{ID: "min-wands-01", Arcana: card.Minor, Suit: card.Wands, Number: "01", Name: "Ace of Wands", Meaning: "Inspiration, spark"}

	testSpread = spread.Spread{hermit, twoCups, star}
)

// fakeClient answers every request with text or err. When gate is set, each
// request blocks until it is closed and signals entered first.
type fakeClient struct {
	text    string
	err     error
	calls   atomic.Int32
	gate    chan struct{}
	entered chan struct{}

	mu       sync.Mutex
	payloads []oracle.Payload
}

func newGatedClient(text string) *fakeClient {
	return &fakeClient{text: text, gate: make(chan struct{}), entered: make(chan struct{}, 16)}
}

func (f *fakeClient) RequestReading(_ context.Context, p oracle.Payload) (*oracle.Response, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.payloads = append(f.payloads, p)
	f.mu.Unlock()

	if f.gate != nil {
		f.entered <- struct{}{}
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return &oracle.Response{Model: "fake", Text: f.text}, nil
}

type recorder struct {
	mu     sync.Mutex
	events []string
	tags   map[string][]string
}

func (r *recorder) Event(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, name)
}

func (r *recorder) Tag(key string, values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tags == nil {
		r.tags = map[string][]string{}
	}
	r.tags[key] = values
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

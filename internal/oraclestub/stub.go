// Package oraclestub is a local stand-in for the remote reading service. It
// answers on the same routes with a deterministic reading built from the
// posted cards, so the client and the fallback path can be exercised
// without network access.
package oraclestub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/oracle"
)

// Model is reported in every stub response
const Model = "stub"

// Options tune the stub's behaviour
type Options struct {
	// FailStatus, when non-zero, makes /api/reading answer with this status.
	FailStatus int
	// Empty makes /api/reading answer with text that has no sections.
	Empty bool
	// Delay is slept before answering a reading request.
	Delay time.Duration
}

type handler struct {
	opts   Options
	logger *zap.Logger
}

// NewRouter returns the stub's routes
func NewRouter(opts Options, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{opts: opts, logger: logger}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", h.health)
	r.Post("/api/reading", h.reading)
	return r
}

// NewServer wraps the router in an http.Server listening on addr
func NewServer(addr string, opts Options, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(opts, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) reading(w http.ResponseWriter, r *http.Request) {
	if h.opts.Delay > 0 {
		select {
		case <-time.After(h.opts.Delay):
		case <-r.Context().Done():
			return
		}
	}
	if h.opts.FailStatus != 0 {
		http.Error(w, "stub configured to fail", h.opts.FailStatus)
		return
	}

	var payload oracle.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(payload.Spread.Cards) != 3 {
		http.Error(w, "spread must contain exactly 3 cards", http.StatusUnprocessableEntity)
		return
	}

	text := Compose(payload.Spread.Cards)
	if h.opts.Empty {
		text = "The cards are quiet today."
	}

	raw, _ := json.Marshal(map[string]any{
		"model": Model,
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": text}},
		},
	})
	resp := oracle.Response{Model: Model, Text: text, Raw: raw}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn("write reading response", zap.Error(err))
	}
}

// Compose writes the markdown reading for a spread
func Compose(cards []oracle.CardPayload) string {
	var b strings.Builder
	for _, c := range cards {
		heading := c.Position + " — " + c.Name
		if strings.EqualFold(c.Arcana, "Major") && c.Number != "" {
			heading += " (" + c.Number + ")"
		}
		fmt.Fprintf(&b, "### %s\n", heading)
		fmt.Fprintf(&b, "**%s.**\n\n", strings.TrimRight(c.Meaning, "."))
		if c.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", c.Description)
		}
	}

	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name)
	}
	b.WriteString("### The Thread Connecting Them\n")
	fmt.Fprintf(&b, "%s.\n\n", strings.Join(names, " → "))
	b.WriteString("### One Question to Carry\n")
	b.WriteString("*What would it look like to take one small step in this direction today?*\n\n")
	b.WriteString("---\n")
	b.WriteString("For reflection — not certainty. 🌱\n")
	return b.String()
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}

// Shutdown stops srv, waiting up to five seconds for open requests
func Shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

package spread

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LocatorResolver turns a canonical image locator into its final URL
type LocatorResolver interface {
	Resolve(ctx context.Context, cardID, specialURL string) string
}

// ImageFetcher brings image bytes into the local image cache
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) error
}

// Preloader resolves and fetches the imagery of a spread before it is shown
type Preloader struct {
	resolver LocatorResolver
	fetcher  ImageFetcher
	logger   *zap.Logger
}

// NewPreloader creates a Preloader. A nil logger disables logging.
func NewPreloader(resolver LocatorResolver, fetcher ImageFetcher, logger *zap.Logger) *Preloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Preloader{resolver: resolver, fetcher: fetcher, logger: logger}
}

// Preload returns s with every card image replaced by its resolved URL. It
// returns once all three resolve-then-fetch chains have settled; a failed
// image fetch counts as settled.
func (p *Preloader) Preload(ctx context.Context, s Spread) Spread {
	out := s
	var g errgroup.Group
	for i := range s {
		g.Go(func() error {
			c := s[i]
			resolved := p.resolver.Resolve(ctx, c.ID, c.Image)
			out[i] = c.WithImage(resolved)

			if err := p.fetcher.Fetch(ctx, resolved); err != nil {
				p.logger.Debug("image preload failed",
					zap.String("card", c.ID),
					zap.String("url", resolved),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Package headlines supplies the pool of French news headlines the
// exercise pipeline draws from.
//
// Headlines come from public RSS feeds. Fetches are cached with a short
// TTL so a burst of game starts does not hammer the feeds; a refresh
// that yields nothing falls back to whatever the cache still holds.
// Callers must tolerate partial and empty results.
package headlines

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog/log"
)

// DefaultFeeds is the stock feed list: three French outlets and one
// international backup.
var DefaultFeeds = []string{
	"https://www.lemonde.fr/rss/une.xml",
	"https://www.franceinfo.fr/rss/une.xml",
	"https://www.liberation.fr/rss/",
	"https://rss.cnn.com/rss/edition.rss",
}

const (
	// maxPerFeed bounds how many titles a single feed contributes.
	maxPerFeed = 10

	// maxHeadlines bounds the total pool size.
	maxHeadlines = 50

	// DefaultTTL is the cache freshness window.
	DefaultTTL = 5 * time.Minute
)

// Source produces a headline pool. forceRefresh bypasses the freshness
// window.
type Source interface {
	Fetch(ctx context.Context, forceRefresh bool) ([]string, error)
}

// Cache persists a fetched pool with its fetch time. A nil Cache
// disables caching.
type Cache interface {
	SaveHeadlines(ctx context.Context, headlines []string) error
	LoadHeadlines(ctx context.Context) ([]string, time.Time, error)
}

// RSS fetches headlines from RSS feeds with TTL caching.
type RSS struct {
	feeds  []string
	parser *gofeed.Parser
	cache  Cache
	ttl    time.Duration
	now    func() time.Time
}

// NewRSS creates an RSS source over the given feeds (DefaultFeeds when
// empty). cache may be nil.
func NewRSS(feeds []string, cache Cache, ttl time.Duration) *RSS {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RSS{
		feeds:  feeds,
		parser: gofeed.NewParser(),
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Fetch returns up to 50 headline strings. Per-feed failures are logged
// and skipped; a fetch that yields nothing at all falls back to the
// cached pool regardless of age. The returned slice may be empty.
func (r *RSS) Fetch(ctx context.Context, forceRefresh bool) ([]string, error) {
	if !forceRefresh {
		if cached, ok := r.fresh(ctx); ok {
			return cached, nil
		}
	}

	var pool []string
	for _, url := range r.feeds {
		if len(pool) >= maxHeadlines {
			break
		}

		feed, err := r.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			log.Warn().Err(err).Str("feed", url).Msg("feed fetch failed")
			continue
		}

		for i, item := range feed.Items {
			if i >= maxPerFeed || len(pool) >= maxHeadlines {
				break
			}
			if item.Title != "" {
				pool = append(pool, item.Title)
			}
		}
	}

	if len(pool) == 0 {
		if cached, _, err := r.loadCached(ctx); err == nil && len(cached) > 0 {
			log.Warn().Msg("all feeds failed, serving stale cached headlines")
			return cached, nil
		}
		return nil, nil
	}

	if r.cache != nil {
		if err := r.cache.SaveHeadlines(ctx, pool); err != nil {
			log.Warn().Err(err).Msg("headline cache save failed")
		}
	}

	return pool, nil
}

// fresh returns the cached pool when it is within the TTL.
func (r *RSS) fresh(ctx context.Context) ([]string, bool) {
	cached, fetchedAt, err := r.loadCached(ctx)
	if err != nil || len(cached) == 0 {
		return nil, false
	}
	if r.now().Sub(fetchedAt) > r.ttl {
		return nil, false
	}
	return cached, true
}

func (r *RSS) loadCached(ctx context.Context) ([]string, time.Time, error) {
	if r.cache == nil {
		return nil, time.Time{}, nil
	}
	return r.cache.LoadHeadlines(ctx)
}

// StaticSource is a fixed-pool Source for tests and offline preview.
type StaticSource struct {
	Headlines []string
}

// Fetch returns a copy of the fixed pool.
func (s *StaticSource) Fetch(_ context.Context, _ bool) ([]string, error) {
	out := make([]string, len(s.Headlines))
	copy(out, s.Headlines)
	return out, nil
}

package exercise

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/vocatinder/internal/annotate"
	"github.com/abhisek/vocatinder/internal/headlines"
)

// minFilteredPool is the smallest filtered pool worth keeping. Below
// this, level filtering is abandoned so it can never starve generation.
const minFilteredPool = 20

// fallbackPoolSize caps the unfiltered fallback pool.
const fallbackPoolSize = 50

// Pipeline turns a pool of headlines into challenges.
type Pipeline struct {
	source    headlines.Source
	annotator annotate.Annotator
	strategy  Strategy
	rng       *rand.Rand
}

// NewPipeline wires a generation pipeline. rng drives pool shuffling and
// must be seedable for deterministic tests.
func NewPipeline(source headlines.Source, annotator annotate.Annotator, strategy Strategy, rng *rand.Rand) *Pipeline {
	return &Pipeline{
		source:    source,
		annotator: annotator,
		strategy:  strategy,
		rng:       rng,
	}
}

// Generate produces up to count challenges for the level. Partial
// results are valid: an empty or uncooperative headline pool yields a
// short (possibly empty) list, never an error, and the caller tops up
// from static fallback data. One re-fetch pass is made when the first
// pass comes up short; nothing is retried beyond that.
func (p *Pipeline) Generate(ctx context.Context, count int, level Level) ([]Challenge, error) {
	challenges := make([]Challenge, 0, count)
	consumed := make(map[string]bool)

	pool, err := p.fetchPool(ctx, false, level)
	if err != nil {
		return challenges, err
	}
	challenges = p.collect(ctx, pool, consumed, challenges, count, level)

	if len(challenges) < count {
		log.Info().
			Int("collected", len(challenges)).
			Int("requested", count).
			Msg("pipeline short after first pass, re-fetching")

		pool, err = p.fetchPool(ctx, true, level)
		if err != nil {
			return challenges, nil
		}
		challenges = p.collect(ctx, pool, consumed, challenges, count, level)
	}

	return challenges, nil
}

// fetchPool obtains, shuffles, and level-filters the headline pool.
func (p *Pipeline) fetchPool(ctx context.Context, forceRefresh bool, level Level) ([]string, error) {
	pool, err := p.source.Fetch(ctx, forceRefresh)
	if err != nil {
		// A failed fetch is equivalent to an empty pool.
		log.Warn().Err(err).Msg("headline fetch failed")
		return nil, nil
	}

	p.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	filtered := filterByLevel(pool, level)
	if len(filtered) < minFilteredPool {
		if len(pool) > fallbackPoolSize {
			pool = pool[:fallbackPoolSize]
		}
		return pool, nil
	}
	return filtered, nil
}

// collect runs one pass over the pool, appending challenges until count
// is reached or the pool is exhausted. Headlines already consumed in
// this invocation are skipped, as are headlines that fail annotation or
// yield no target.
func (p *Pipeline) collect(ctx context.Context, pool []string, consumed map[string]bool, challenges []Challenge, count int, level Level) []Challenge {
	for _, headline := range pool {
		if len(challenges) >= count {
			break
		}
		if consumed[headline] {
			continue
		}
		consumed[headline] = true

		ch, err := p.build(ctx, headline, level)
		if err != nil {
			if !errors.Is(err, ErrNoCandidateNouns) {
				log.Warn().Err(err).Str("headline", headline).Msg("skipping headline")
			}
			continue
		}
		challenges = append(challenges, ch)
	}
	return challenges
}

func (p *Pipeline) build(ctx context.Context, headline string, level Level) (Challenge, error) {
	tokens, err := p.annotator.Annotate(ctx, headline)
	if err != nil {
		return Challenge{}, err
	}

	target, err := p.strategy.SelectTarget(ctx, tokens, level)
	if err != nil {
		return Challenge{}, err
	}

	display, isCorrect := p.strategy.Restructure(headline, target, level)

	return Challenge{
		Original:  headline,
		Display:   display,
		Target:    target,
		IsCorrect: isCorrect,
	}, nil
}

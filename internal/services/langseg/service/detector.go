// Package service implements word language detection and text segmentation
// over the langseg domain ports
package service

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"glossa/internal/core/heuristic"
	"glossa/internal/platform/cache"
	"glossa/internal/platform/logger"
	"glossa/internal/services/langseg/domain"
)

// DefaultCacheSize bounds the detection result cache
const DefaultCacheSize = 1000

// WordDetector resolves words to language estimates with a bounded FIFO
// result cache in front of an optional external capability and the
// deterministic heuristic fallback
type WordDetector struct {
	capability domain.DetectorPort // nil when not provided
	cache      *cache.FIFO[string, domain.Detection]
	log        *logger.Logger
}

// DetectorConfig tunes the word detector
type DetectorConfig struct {
	// CacheSize is the result cache capacity; zero takes DefaultCacheSize
	CacheSize int
}

// NewWordDetector builds a detector. capability may be nil, in which case
// every word takes the heuristic path
func NewWordDetector(capability domain.DetectorPort, cfg DetectorConfig) *WordDetector {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &WordDetector{
		capability: capability,
		cache:      cache.NewFIFO[string, domain.Detection](size),
		log:        logger.Named("langseg"),
	}
}

// cacheKey normalizes a word for cache lookup: trim then case fold, so
// "Hello" and " Hello " share one entry
func cacheKey(word string) string {
	return cases.Fold().String(strings.TrimSpace(word))
}

// DetectWord resolves one word. It never fails outward: a capability error
// or empty candidate list falls back to the heuristic, and the result of
// whichever path ran is cached under the normalized word.
// Returns nil for words that are empty after trimming; nothing is cached
func (d *WordDetector) DetectWord(ctx context.Context, word string, expected []string) *domain.Detection {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return nil
	}

	key := cacheKey(trimmed)
	if det, ok := d.cache.Get(key); ok {
		return &det
	}

	det, ok := d.detectExternal(ctx, trimmed, expected)
	if !ok {
		h := heuristic.Detect(trimmed)
		det = domain.Detection{Lang: h.Lang, Confidence: h.Confidence}
	}

	d.cache.Put(key, det)
	return &det
}

// detectExternal consults the capability when configured. ok is false when
// the capability is absent, errors, or returns no candidates
func (d *WordDetector) detectExternal(ctx context.Context, word string, expected []string) (domain.Detection, bool) {
	if d.capability == nil {
		return domain.Detection{}, false
	}
	cands, err := d.capability.Detect(ctx, word, expected)
	if err != nil {
		d.log.Debug().Err(err).Str("word", word).Msg("external detector failed, using heuristic")
		return domain.Detection{}, false
	}
	if len(cands) == 0 {
		return domain.Detection{}, false
	}
	top := cands[0]
	return domain.Detection{Lang: top.Lang, Confidence: clamp01(top.Confidence)}, true
}

// Available reports whether an external capability was provided
func (d *WordDetector) Available() bool { return d.capability != nil }

// ClearCache empties the result cache
func (d *WordDetector) ClearCache() { d.cache.Clear() }

// CacheLen exposes the cache size for tests and diagnostics
func (d *WordDetector) CacheLen() int { return d.cache.Len() }

// clamp01 keeps foreign confidences inside the Detection invariant
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

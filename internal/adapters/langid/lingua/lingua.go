// Package lingua adapts the lingua-go statistical detector to the langseg
// capability port
package lingua

import (
	"context"
	"strings"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"

	"glossa/internal/services/langseg/domain"
)

// defaultMinLetters gates the model: single characters and very short
// fragments give the n-gram model nothing to work with, so below this many
// letters the adapter reports no candidates and lets the heuristic decide
const defaultMinLetters = 3

// Detector wraps a lingua LanguageDetector behind domain.DetectorPort
type Detector struct {
	det        lingua.LanguageDetector
	minLetters int
}

// Options configures the adapter
type Options struct {
	// Languages restricts the model to the given lowercase ISO 639-1 codes.
	// Restriction needs at least two resolvable codes; otherwise the detector
	// considers all languages lingua supports
	Languages []string
	// MinLetters overrides the letter-count gate; zero keeps the default
	MinLetters int
	// Preload loads all language models eagerly instead of on first use
	Preload bool
}

// byISO maps the ISO 639-1 codes this service is usually deployed with to
// lingua constants. Codes outside the table fall back to the full model
var byISO = map[string]lingua.Language{
	"ar": lingua.Arabic,
	"de": lingua.German,
	"el": lingua.Greek,
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"he": lingua.Hebrew,
	"ja": lingua.Japanese,
	"ru": lingua.Russian,
	"uk": lingua.Ukrainian,
	"zh": lingua.Chinese,
}

// New builds a detector, restricted to opts.Languages when possible
func New(opts Options) *Detector {
	b := lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	if langs, ok := resolve(opts.Languages); ok {
		b = lingua.NewLanguageDetectorBuilder().FromLanguages(langs...)
	}
	if opts.Preload {
		b = b.WithPreloadedLanguageModels()
	}
	min := opts.MinLetters
	if min <= 0 {
		min = defaultMinLetters
	}
	return &Detector{det: b.Build(), minLetters: min}
}

// resolve maps ISO codes to lingua languages; ok only when every code is
// known and at least two remain, the minimum FromLanguages accepts
func resolve(codes []string) ([]lingua.Language, bool) {
	if len(codes) < 2 {
		return nil, false
	}
	out := make([]lingua.Language, 0, len(codes))
	for _, c := range codes {
		l, ok := byISO[strings.ToLower(strings.TrimSpace(c))]
		if !ok {
			return nil, false
		}
		out = append(out, l)
	}
	return out, true
}

// Detect returns ranked candidates for word, best first. Tags are lowercase
// ISO 639-1. The expected hint is accepted but not used to restrict the
// model; ranking already surfaces the likely languages first
func (d *Detector) Detect(_ context.Context, word string, _ []string) ([]domain.Candidate, error) {
	sample := strings.TrimSpace(word)
	if sample == "" {
		return nil, nil
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < d.minLetters {
		return nil, nil
	}

	values := d.det.ComputeLanguageConfidenceValues(sample)
	cands := make([]domain.Candidate, 0, len(values))
	for _, v := range values {
		if v.Value() <= 0 {
			continue
		}
		cands = append(cands, domain.Candidate{
			Lang:       strings.ToLower(v.Language().IsoCode639_1().String()),
			Confidence: v.Value(),
		})
	}
	return cands, nil
}

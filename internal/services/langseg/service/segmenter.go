package service

import (
	"context"
	"strings"

	"glossa/internal/core/tokenize"
	"glossa/internal/services/langseg/domain"
)

// Segmenter drives the tokenizer and word detector to build ordered
// language-tagged segments. Tokens are resolved one at a time in document
// order; the merge below depends on that sequencing
type Segmenter struct {
	words domain.WordDetectorPort
}

// NewSegmenter builds a segmenter over a word detector
func NewSegmenter(words domain.WordDetectorPort) *Segmenter {
	return &Segmenter{words: words}
}

// Segment splits text into segments of consecutive same-language tokens.
// Empty or whitespace-only input yields an empty slice. Concatenating the
// returned segment texts reproduces the tokenized input (leading whitespace
// excluded), and every segment carries a concrete language
func (s *Segmenter) Segment(ctx context.Context, text string, opts domain.SegmentOptions) []domain.Segment {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = domain.DefaultThreshold
	}
	defaultLang := opts.DefaultLang
	if defaultLang == "" {
		defaultLang = domain.DefaultLang
	}

	toks := tokenize.Tokenize(text)
	if len(toks) == 0 {
		return nil
	}

	var (
		segs []domain.Segment
		cur  strings.Builder
		lang string
	)
	for _, tk := range toks {
		eff := defaultLang
		// a detection at exactly the threshold passes; only strictly lower
		// confidence falls back to the default language
		if det := s.words.DetectWord(ctx, tk.Text, opts.ExpectedLanguages); det != nil &&
			det.Lang != "" && det.Confidence >= threshold {
			eff = det.Lang
		}

		if cur.Len() > 0 && eff != lang {
			segs = append(segs, domain.Segment{Text: cur.String(), Lang: lang})
			cur.Reset()
		}
		lang = eff
		cur.WriteString(tk.Text)
		cur.WriteString(tk.TrailingSpace)
	}
	segs = append(segs, domain.Segment{Text: cur.String(), Lang: lang})
	return segs
}

package domain

import "context"

// DetectorPort is the injected external language identification capability.
// Detect returns candidates ranked best first. expected is an optimization
// hint only; implementations may ignore it. The capability is treated as
// untrusted: any error or empty candidate list degrades to the heuristic
type DetectorPort interface {
	Detect(ctx context.Context, word string, expected []string) ([]Candidate, error)
}

// WordDetectorPort resolves single words to language estimates.
// DetectWord never fails outward: capability errors are absorbed and the
// worst case is a low-confidence heuristic guess. A nil result means the
// word was empty after trimming; nothing is cached for it
type WordDetectorPort interface {
	DetectWord(ctx context.Context, word string, expected []string) *Detection
	Available() bool
	ClearCache()
}

// SegmenterPort splits text into ordered language-tagged segments.
// Tokens are processed strictly in document order; the merge step depends on
// that sequencing
type SegmenterPort interface {
	Segment(ctx context.Context, text string, opts SegmentOptions) []Segment
}

// Ports are dependencies injected into the langseg module.
// Capability may be nil, which is how "detector unavailable" is expressed
type Ports struct {
	Capability DetectorPort
}

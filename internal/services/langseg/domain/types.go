// Package domain defines the core types and ports for language segmentation
package domain

// Detection is a per-word language estimate. Lang is empty for
// language-neutral tokens (numbers, bare punctuation) and for genuinely
// undetermined words; the two differ only by Confidence (1.0 when neutral by
// rule, lower when unknown). Confidence is always within [0,1]
type Detection struct {
	Lang       string  `json:"lang"`
	Confidence float64 `json:"confidence"`
}

// Candidate is one ranked guess from an external detection capability.
// Lang is passed through verbatim; no validation is applied to foreign tags
type Candidate struct {
	Lang       string
	Confidence float64
}

// Segment is a maximal run of consecutive tokens sharing one effective
// language, rendered back to text with the original inter-word spacing.
// Lang is always concrete, never empty: the default language has been
// substituted before segments are built
type Segment struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// SegmentOptions controls thresholding and defaults for Segment.
// Zero values take the documented defaults (threshold 0.7, lang "en")
type SegmentOptions struct {
	ExpectedLanguages []string
	Threshold         float64
	DefaultLang       string
}

// DefaultThreshold and DefaultLang are applied when SegmentOptions fields
// are left at their zero values
const (
	DefaultThreshold = 0.7
	DefaultLang      = "en"
)

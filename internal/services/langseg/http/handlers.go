// Package http provides http transport for language segmentation
package http

import (
	stdhttp "net/http"

	"glossa/internal/modkit/httpkit"
	"glossa/internal/services/langseg/domain"
)

// Defaults are the module-level segmentation defaults applied when a request
// omits the corresponding field
type Defaults struct {
	Threshold         float64
	DefaultLang       string
	ExpectedLanguages []string
}

// Register mounts langseg endpoints on the given router
func Register(r httpkit.Router, words domain.WordDetectorPort, segments domain.SegmenterPort, d Defaults) {
	h := &handlers{words: words, segments: segments, defaults: d}

	// per-word detection
	httpkit.PostJSON[domain.DetectInput](r, "/detect", h.detect)

	// full text segmentation
	httpkit.PostJSON[domain.SegmentInput](r, "/segment", h.segment)

	// cache lifecycle and capability probing
	httpkit.Delete(r, "/cache", h.clearCache)
	httpkit.Get(r, "/availability", h.availability)
}

type handlers struct {
	words    domain.WordDetectorPort
	segments domain.SegmenterPort
	defaults Defaults
}

func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	det := h.words.DetectWord(r.Context(), in.Word, in.ExpectedLangs)
	return domain.DetectOutput{Detection: det}, nil
}

func (h *handlers) segment(r *stdhttp.Request, in domain.SegmentInput) (any, error) {
	opts := domain.SegmentOptions{
		ExpectedLanguages: in.ExpectedLanguages,
		Threshold:         h.defaults.Threshold,
		DefaultLang:       h.defaults.DefaultLang,
	}
	if len(opts.ExpectedLanguages) == 0 {
		opts.ExpectedLanguages = h.defaults.ExpectedLanguages
	}
	if in.Threshold != nil {
		opts.Threshold = *in.Threshold
	}
	if in.DefaultLang != "" {
		opts.DefaultLang = in.DefaultLang
	}

	segs := h.segments.Segment(r.Context(), in.Text, opts)
	return domain.SegmentOutput{Segments: segs}, nil
}

func (h *handlers) clearCache(r *stdhttp.Request) (any, error) {
	h.words.ClearCache()
	return httpkit.NoContent(), nil
}

func (h *handlers) availability(r *stdhttp.Request) (any, error) {
	return domain.AvailabilityOutput{Available: h.words.Available()}, nil
}

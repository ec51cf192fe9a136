// Package whatlang adapts the whatlanggo trigram detector to the langseg
// capability port. Lighter than lingua but single-candidate only
package whatlang

import (
	"context"
	"strings"

	wlg "github.com/abadojack/whatlanggo"

	"glossa/internal/services/langseg/domain"
)

// Detector implements domain.DetectorPort over whatlanggo
type Detector struct{}

// New builds the adapter; whatlanggo keeps no state between calls
func New() *Detector { return &Detector{} }

// Detect returns at most one candidate. whatlanggo reports a single best
// language with a confidence in [0,1]; an undetermined result yields no
// candidates so the caller falls back to the heuristic
func (d *Detector) Detect(_ context.Context, word string, _ []string) ([]domain.Candidate, error) {
	sample := strings.TrimSpace(word)
	if sample == "" {
		return nil, nil
	}

	info := wlg.Detect(sample)
	code := info.Lang.Iso6391()
	if code == "" {
		return nil, nil
	}
	return []domain.Candidate{{Lang: code, Confidence: info.Confidence}}, nil
}

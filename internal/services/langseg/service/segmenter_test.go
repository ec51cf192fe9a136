package service

import (
	"context"
	"strings"
	"testing"

	"glossa/internal/services/langseg/domain"
)

func newTestSegmenter(cap domain.DetectorPort) *Segmenter {
	return NewSegmenter(NewWordDetector(cap, DetectorConfig{}))
}

func TestSegment_Empty(t *testing.T) {
	s := newTestSegmenter(nil)
	if got := s.Segment(context.Background(), "", domain.SegmentOptions{}); len(got) != 0 {
		t.Fatalf("expected no segments, got %v", got)
	}
	if got := s.Segment(context.Background(), "   \n ", domain.SegmentOptions{}); len(got) != 0 {
		t.Fatalf("expected no segments for whitespace input, got %v", got)
	}
}

func TestSegment_GreekEnglishScenario(t *testing.T) {
	s := newTestSegmenter(nil)
	got := s.Segment(context.Background(), "Καλημέρα hello κόσμος", domain.SegmentOptions{})

	want := []domain.Segment{
		{Text: "Καλημέρα ", Lang: "el"},
		{Text: "hello ", Lang: "en"},
		{Text: "κόσμος", Lang: "el"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestSegment_Reconstruction(t *testing.T) {
	s := newTestSegmenter(nil)
	inputs := []string{
		"Hello, world!",
		"Καλημέρα hello κόσμος",
		"numbers 42 and URLs www.example.com mix in",
		"многоязычный text με ελληνικά\nand newlines",
	}
	for _, in := range inputs {
		segs := s.Segment(context.Background(), in, domain.SegmentOptions{})
		var b strings.Builder
		for _, sg := range segs {
			b.WriteString(sg.Text)
			if sg.Lang == "" {
				t.Fatalf("segment with empty lang for %q: %+v", in, sg)
			}
		}
		if b.String() != in {
			t.Fatalf("reconstruction mismatch for %q: got %q", in, b.String())
		}
	}
}

func TestSegment_NeutralTokensJoinSurroundingDefault(t *testing.T) {
	// numbers and punctuation resolve to null language at confidence 1.0,
	// which always becomes the default language, so they merge with
	// neighboring default-language words
	s := newTestSegmenter(nil)
	got := s.Segment(context.Background(), "total: 42 dollars", domain.SegmentOptions{})
	if len(got) != 1 || got[0].Lang != "en" {
		t.Fatalf("expected one en segment, got %v", got)
	}
}

func TestSegment_ThresholdEqualityPasses(t *testing.T) {
	// capability reports exactly the threshold; equality must pass, not
	// fall back to the default language
	cap := &stubCapability{cands: []domain.Candidate{{Lang: "fr", Confidence: 0.7}}}
	s := newTestSegmenter(cap)

	got := s.Segment(context.Background(), "bonjour", domain.SegmentOptions{Threshold: 0.7})
	if len(got) != 1 || got[0].Lang != "fr" {
		t.Fatalf("confidence == threshold must pass, got %v", got)
	}
}

func TestSegment_BelowThresholdFallsBackToDefault(t *testing.T) {
	cap := &stubCapability{cands: []domain.Candidate{{Lang: "fr", Confidence: 0.69}}}
	s := newTestSegmenter(cap)

	got := s.Segment(context.Background(), "bonjour", domain.SegmentOptions{Threshold: 0.7, DefaultLang: "de"})
	if len(got) != 1 || got[0].Lang != "de" {
		t.Fatalf("confidence below threshold must take the default, got %v", got)
	}
}

func TestSegment_CustomDefaultLang(t *testing.T) {
	s := newTestSegmenter(nil)
	got := s.Segment(context.Background(), "12345", domain.SegmentOptions{DefaultLang: "el"})
	if len(got) != 1 || got[0].Lang != "el" {
		t.Fatalf("expected custom default language, got %v", got)
	}
}

func TestSegment_SpacingStaysInsideSegments(t *testing.T) {
	s := newTestSegmenter(nil)
	got := s.Segment(context.Background(), "ένα  δύο   hello", domain.SegmentOptions{})
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %v", got)
	}
	if got[0].Text != "ένα  δύο   " {
		t.Fatalf("inter-word spacing must stay with its segment, got %q", got[0].Text)
	}
}

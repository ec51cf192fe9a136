package domain

// DetectInput is the transport payload for single-word detection
type DetectInput struct {
	Word          string   `json:"word" validate:"required"`
	ExpectedLangs []string `json:"expected_langs,omitempty" validate:"omitempty,dive,min=2,max=8"`
}

// DetectOutput wraps a detection; Detection is null for empty words
type DetectOutput struct {
	Detection *Detection `json:"detection"`
}

// SegmentInput is the transport payload for text segmentation
type SegmentInput struct {
	Text              string   `json:"text" validate:"required"`
	ExpectedLanguages []string `json:"expected_languages,omitempty" validate:"omitempty,dive,min=2,max=8"`
	Threshold         *float64 `json:"threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	DefaultLang       string   `json:"default_lang,omitempty" validate:"omitempty,min=2,max=8"`
}

// SegmentOutput carries the ordered segment list
type SegmentOutput struct {
	Segments []Segment `json:"segments"`
}

// AvailabilityOutput reports whether an external capability is configured
type AvailabilityOutput struct {
	Available bool `json:"available"`
}

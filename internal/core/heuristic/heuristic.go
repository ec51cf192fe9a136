// Package heuristic implements deterministic per-word language estimation
// from token shape and Unicode script proportions. It is the fallback path
// when no external detector capability is configured, so it must stay pure:
// no I/O, no randomness, same input always yields the same output
package heuristic

import "glossa/internal/core/script"

// Result is a single-word language estimate. Lang is empty for
// language-neutral tokens (numbers, bare punctuation) and for words the
// heuristic cannot place; the two cases differ only by Confidence
// (1.0 neutral-by-rule, below 1.0 genuinely unknown)
type Result struct {
	Lang       string
	Confidence float64
}

// scriptRule maps a dominant script bucket to a language guess.
// Script-exclusive alphabets get higher confidence than the Latin default:
// Latin script is shared by many languages and is inherently ambiguous,
// so a Latin-majority word is only ever a weak "en" guess
type scriptRule struct {
	proportion func(script.Proportions) float64
	lang       string
	confidence float64
}

var scriptRules = []scriptRule{
	{func(p script.Proportions) float64 { return p.Greek }, "el", 0.9},
	{func(p script.Proportions) float64 { return p.Cyrillic }, "ru", 0.8},
	{func(p script.Proportions) float64 { return p.Arabic }, "ar", 0.9},
	{func(p script.Proportions) float64 { return p.Hebrew }, "he", 0.9},
	{func(p script.Proportions) float64 { return p.CJK }, "zh", 0.7},
	{func(p script.Proportions) float64 { return p.Latin }, "en", 0.6},
}

// Detect estimates the language of a single word.
// Precedence, first match wins: number, URL, punctuation-only, then the
// first script rule whose proportion exceeds 0.5, else unknown at 0.3
func Detect(word string) Result {
	switch {
	case IsNumber(word):
		return Result{Confidence: 1.0}
	case IsURL(word):
		return Result{Lang: "en", Confidence: 0.6}
	case IsPunctuation(word):
		return Result{Confidence: 1.0}
	}

	props := script.Of(word)
	for _, rule := range scriptRules {
		if rule.proportion(props) > 0.5 {
			return Result{Lang: rule.lang, Confidence: rule.confidence}
		}
	}
	return Result{Confidence: 0.3}
}

package heuristic

import (
	"strings"
	"unicode"
)

// Token shape predicates, evaluated before any script analysis.
// All three treat the empty string as false

// IsNumber reports whether every rune of text is a digit, whitespace, or one
// of the numeric punctuation characters . , - + ( )
func IsNumber(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsDigit(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '.', ',', '-', '+', '(', ')':
		default:
			return false
		}
	}
	return true
}

// tlds is the fixed set recognized by the bare-domain form of IsURL
var tlds = []string{"com", "org", "net", "edu", "gov", "io", "app"}

// IsURL reports whether text looks like a URL: an explicit scheme, a www.
// prefix, or word characters followed by a dot and a known TLD
func IsURL(text string) bool {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "www.") {
		return true
	}
	dot := strings.IndexByte(lower, '.')
	if dot < 1 {
		return false
	}
	for _, r := range lower[:dot] {
		if !isWordRune(r) {
			return false
		}
	}
	rest := lower[dot+1:]
	for _, tld := range tlds {
		if rest == tld || strings.HasPrefix(rest, tld+".") || strings.HasPrefix(rest, tld+"/") {
			return true
		}
	}
	return false
}

// IsPunctuation reports whether text is non-empty and contains no word
// characters and no whitespace
func IsPunctuation(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if isWordRune(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// isWordRune matches the \w class: letters, digits, underscore
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

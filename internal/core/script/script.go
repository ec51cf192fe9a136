// Package script classifies code points into coarse Unicode script buckets
// and computes per-bucket proportions over a string
package script

// Proportions holds, per bucket, the fraction of a string's code points that
// fall inside the bucket's ranges. Code points outside every bucket count
// toward the denominator but toward no bucket, so the fields sum to at most 1
type Proportions struct {
	Greek    float64
	Cyrillic float64
	Arabic   float64
	Hebrew   float64
	CJK      float64
	Latin    float64
}

// Bucket ranges are fixed Unicode blocks, not the full script property.
// CJK covers Han plus the two Japanese kana blocks; Latin covers ASCII
// letters plus the Latin-1/Extended letter range
func isGreek(r rune) bool    { return r >= 0x0370 && r <= 0x03FF }
func isCyrillic(r rune) bool { return r >= 0x0400 && r <= 0x04FF }
func isArabic(r rune) bool   { return r >= 0x0600 && r <= 0x06FF }
func isHebrew(r rune) bool   { return r >= 0x0590 && r <= 0x05FF }

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // Han
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) // Katakana
}

func isLatin(r rune) bool {
	return (r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0x00C0 && r <= 0x024F)
}

// Of computes bucket proportions over the code points of s.
// An empty string yields the zero value; there is no division by zero
func Of(s string) Proportions {
	var (
		greek, cyrillic, arabic, hebrew, cjk, latin int
		total                                       int
	)
	for _, r := range s {
		total++
		switch {
		case isGreek(r):
			greek++
		case isCyrillic(r):
			cyrillic++
		case isArabic(r):
			arabic++
		case isHebrew(r):
			hebrew++
		case isCJK(r):
			cjk++
		case isLatin(r):
			latin++
		}
	}
	if total == 0 {
		return Proportions{}
	}
	n := float64(total)
	return Proportions{
		Greek:    float64(greek) / n,
		Cyrillic: float64(cyrillic) / n,
		Arabic:   float64(arabic) / n,
		Hebrew:   float64(hebrew) / n,
		CJK:      float64(cjk) / n,
		Latin:    float64(latin) / n,
	}
}

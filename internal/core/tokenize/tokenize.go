// Package tokenize splits raw text into word and punctuation tokens while
// preserving the exact inter-token whitespace, so the original text can be
// reconstructed byte for byte from the token sequence
package tokenize

import "unicode"

// Token is one maximal run of word characters or of punctuation characters,
// plus whatever whitespace (spaces, tabs, newlines) followed it.
// Immutable once produced
type Token struct {
	Text          string
	TrailingSpace string
}

// isWord reports whether r belongs to a word run. Apostrophe and hyphen are
// word characters here so contractions and hyphenated words stay one token
func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' || r == '-'
}

// Tokenize splits text into an eagerly materialized token sequence.
// Joining Text+TrailingSpace over all tokens reproduces the input from the
// start of the first token to the end of the string; whitespace before the
// first token is dropped. An empty or all-whitespace input yields no tokens
func Tokenize(text string) []Token {
	var toks []Token

	i := 0
	runes := []rune(text)
	n := len(runes)
	for i < n {
		// skip inter-token whitespace; it was already attached to the
		// previous token, or is leading whitespace and gets dropped
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		if isWord(runes[i]) {
			for i < n && isWord(runes[i]) {
				i++
			}
		} else {
			for i < n && !isWord(runes[i]) && !unicode.IsSpace(runes[i]) {
				i++
			}
		}
		word := string(runes[start:i])

		spStart := i
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		toks = append(toks, Token{
			Text:          word,
			TrailingSpace: string(runes[spStart:i]),
		})
	}
	return toks
}

// Join concatenates Text+TrailingSpace over toks, reversing Tokenize modulo
// dropped leading whitespace
func Join(toks []Token) string {
	var out []byte
	for _, tk := range toks {
		out = append(out, tk.Text...)
		out = append(out, tk.TrailingSpace...)
	}
	return string(out)
}

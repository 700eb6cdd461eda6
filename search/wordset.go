package search

import (
	"strings"
	"unicode/utf8"
)

// WordSet splits the text on white space and looks the pattern up in a hash
// set of the resulting words. Unlike the other engines it matches whole
// words only, and it rebuilds the set on every call: it measures what a
// tokenize-then-lookup approach costs against real substring search.
//
// Only ASCII white space (space, \t, \n, \v, \f, \r) separates words.
type WordSet struct {
	word string
}

// NewWordSet builds an engine looking for the whole word pattern.
func NewWordSet(pattern string) (*WordSet, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return &WordSet{word: pattern}, nil
}

// Index returns the offset of the first whole-word occurrence, or -1.
func (w *WordSet) Index(text string) int {
	words := strings.FieldsFunc(text, isSpaceRune)
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	if _, ok := set[w.word]; !ok {
		return -1
	}
	return wordOffset(text, w.word)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSpaceRune(r rune) bool {
	return r < utf8.RuneSelf && isSpace(byte(r))
}

// wordOffset returns the offset of the first field of text equal to word.
// Separators are single ASCII bytes, so a byte scan sees the same fields
// as isSpaceRune.
func wordOffset(text, word string) int {
	start := -1
	for i := 0; i <= len(text); i++ {
		if i == len(text) || isSpace(text[i]) {
			if start >= 0 && text[start:i] == word {
				return start
			}
			start = -1
		} else if start < 0 {
			start = i
		}
	}
	return -1
}

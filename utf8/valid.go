// Package utf8 validates corpus text before it is handed to the engines.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/strbench/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	idx := ascii.IndexMask(s, 0x80)
	if idx == -1 {
		return true
	}

	return stdlib.ValidString(s[idx:])
}

// InvalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in s, or -1 when s is valid.
func InvalidOffset(s string) int {
	idx := ascii.IndexMask(s, 0x80)
	if idx == -1 {
		return -1
	}

	for i := idx; i < len(s); {
		if s[i] < stdlib.RuneSelf {
			i++
			continue
		}
		r, size := stdlib.DecodeRuneInString(s[i:])
		if r == stdlib.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

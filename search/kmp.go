package search

// KMP is the Knuth-Morris-Pratt engine. It reads the text once, left to
// right, and never moves backwards in it: on a mismatch the border table
// says how much of the pattern is already matched.
type KMP struct {
	pattern string
	border  []int // border[i] is the longest proper border of pattern[:i+1]
}

// NewKMP computes the border table of pattern in O(len(pattern)).
func NewKMP(pattern string) (*KMP, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	m := len(pattern)
	border := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = border[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		border[i] = k
	}
	return &KMP{pattern: pattern, border: border}, nil
}

func (k *KMP) Index(text string) int {
	p := k.pattern
	m := len(p)
	if m > len(text) {
		return -1
	}

	q := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		for q > 0 && c != p[q] {
			q = k.border[q-1]
		}
		if c == p[q] {
			q++
		}
		if q == m {
			return i - m + 1
		}
	}
	return -1
}

package search

// Horspool is the Boyer-Moore-Horspool engine. The window is compared right
// to left and shifted by the distance from the last occurrence of the byte
// under the window's last position to the end of the pattern.
type Horspool struct {
	pattern string
	shift   [256]int
}

// NewHorspool builds the shift table for pattern.
func NewHorspool(pattern string) (*Horspool, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	h := &Horspool{pattern: pattern}
	m := len(pattern)
	for i := range h.shift {
		h.shift[i] = m
	}
	// the last byte is excluded so every shift stays >= 1
	for i := 0; i < m-1; i++ {
		h.shift[pattern[i]] = m - 1 - i
	}
	return h, nil
}

func (h *Horspool) Index(text string) int {
	p := h.pattern
	m, n := len(p), len(text)

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == p[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += h.shift[text[i+m-1]]
	}
	return -1
}

package search

// Sunday is the Quick Search engine. After a mismatch it looks at the byte
// just past the window, so shifts range from 1 to len(pattern)+1.
type Sunday struct {
	pattern string
	shift   [256]int
}

// NewSunday builds the shift table for pattern.
func NewSunday(pattern string) (*Sunday, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	s := &Sunday{pattern: pattern}
	m := len(pattern)
	for i := range s.shift {
		s.shift[i] = m + 1
	}
	for i := 0; i < m; i++ {
		s.shift[pattern[i]] = m - i
	}
	return s, nil
}

func (s *Sunday) Index(text string) int {
	p := s.pattern
	m, n := len(p), len(text)

	for i := 0; i <= n-m; {
		j := 0
		for j < m && text[i+j] == p[j] {
			j++
		}
		if j == m {
			return i
		}
		if i+m >= n {
			break
		}
		i += s.shift[text[i+m]]
	}
	return -1
}

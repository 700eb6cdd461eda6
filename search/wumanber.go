package search

// WuManber searches for a set of patterns at once. The window is as long as
// the shortest pattern; its last block of bytes is hashed to a shift that is
// safe for every pattern, and only a zero shift leads to verification of
// the patterns whose truncated prefix ends with that block.
type WuManber struct {
	patterns []string
	lmin     int
	block    int // 2, or 1 when the shortest pattern has a single byte
	shift    []int32
	bucket   map[uint16][]int
}

// NewWuManber builds the shift and bucket tables for patterns.
// An empty set, or any empty member, fails with ErrEmptyPattern.
func NewWuManber(patterns ...string) (*WuManber, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPattern
	}

	lmin := len(patterns[0])
	for _, p := range patterns {
		if len(p) == 0 {
			return nil, ErrEmptyPattern
		}
		lmin = min(lmin, len(p))
	}

	w := &WuManber{
		patterns: append([]string(nil), patterns...),
		lmin:     lmin,
		block:    2,
		bucket:   make(map[uint16][]int),
	}
	if lmin == 1 {
		w.block = 1
	}

	w.shift = make([]int32, 1<<(8*w.block))
	def := int32(lmin - w.block + 1)
	for i := range w.shift {
		w.shift[i] = def
	}

	for idx, p := range w.patterns {
		// q is the offset of the block's last byte in p[:lmin]
		for q := w.block - 1; q < lmin; q++ {
			h := w.hash(p, q)
			w.shift[h] = min(w.shift[h], int32(lmin-1-q))
		}
		h := w.hash(p, lmin-1)
		w.bucket[h] = append(w.bucket[h], idx)
	}
	return w, nil
}

func (w *WuManber) hash(s string, end int) uint16 {
	if w.block == 1 {
		return uint16(s[end])
	}
	return uint16(s[end-1])<<8 | uint16(s[end])
}

// Index returns the offset of the leftmost occurrence of any pattern.
func (w *WuManber) Index(text string) int {
	n := len(text)

	for pos := w.lmin - 1; pos < n; {
		h := w.hash(text, pos)
		if s := w.shift[h]; s > 0 {
			pos += int(s)
			continue
		}

		start := pos - w.lmin + 1
		for _, idx := range w.bucket[h] {
			p := w.patterns[idx]
			if start+len(p) <= n && text[start:start+len(p)] == p {
				return start
			}
		}
		pos++
	}
	return -1
}

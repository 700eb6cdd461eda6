package search

// BNDM is Backward Nondeterministic DAWG Matching: the suffix automaton of
// the reversed pattern simulated bit-parallel. Each window is read right to
// left while the bytes read are still a factor of the pattern, and the last
// prefix seen decides the shift.
type BNDM struct {
	pattern string
	masks   [256]uint64
	prefix  uint64
}

// NewBNDM builds the per-byte masks. Patterns longer than MaxBitParallel
// bytes fail with ErrPatternTooLong.
func NewBNDM(pattern string) (*BNDM, error) {
	if err := checkBitParallel(pattern); err != nil {
		return nil, err
	}

	m := len(pattern)
	b := &BNDM{pattern: pattern, prefix: 1 << (m - 1)}
	for i := 0; i < m; i++ {
		b.masks[pattern[i]] |= 1 << (m - 1 - i)
	}
	return b, nil
}

func (b *BNDM) Index(text string) int {
	m, n := len(b.pattern), len(text)

	for pos := 0; pos <= n-m; {
		j, last := m, m
		state := ^uint64(0)
		for state != 0 {
			state &= b.masks[text[pos+j-1]]
			j--
			if state&b.prefix != 0 {
				if j == 0 {
					return pos
				}
				last = j
			}
			state <<= 1
		}
		pos += last
	}
	return -1
}

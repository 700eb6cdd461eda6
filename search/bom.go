package search

// BOM is Backward Oracle Matching. It reads each window right to left
// through the factor oracle of the reversed pattern. The oracle accepts every
// factor of the pattern (and a few other strings), so failing to read a byte
// proves no occurrence starts before it, while reading a whole window still
// needs a verification.
type BOM struct {
	pattern string
	// delta[s*256+c] is the oracle transition from state s on byte c.
	// State 0 is the initial state and never a target, so 0 means "none".
	delta []int32
}

// NewBOM builds the factor oracle of the reversed pattern.
func NewBOM(pattern string) (*BOM, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	m := len(pattern)
	delta := make([]int32, (m+1)*256)
	supply := make([]int32, m+1)
	supply[0] = -1

	for i := 1; i <= m; i++ {
		// the reversed pattern, read forwards
		c := int32(pattern[m-i])
		delta[int32(i-1)*256+c] = int32(i)

		k := supply[i-1]
		for k > -1 && delta[k*256+c] == 0 {
			delta[k*256+c] = int32(i)
			k = supply[k]
		}
		if k == -1 {
			supply[i] = 0
		} else {
			supply[i] = delta[k*256+c]
		}
	}
	return &BOM{pattern: pattern, delta: delta}, nil
}

func (b *BOM) Index(text string) int {
	m, n := len(b.pattern), len(text)

	for pos := 0; pos <= n-m; {
		state := int32(0)
		j := m
		for j > 0 {
			next := b.delta[state*256+int32(text[pos+j-1])]
			if next == 0 {
				break
			}
			state = next
			j--
		}
		if j == 0 {
			if text[pos:pos+m] == b.pattern {
				return pos
			}
			pos++
			continue
		}
		pos += j
	}
	return -1
}

package search

// ShiftAnd simulates the pattern's nondeterministic automaton in one machine
// word. Bit i of the state is set while pattern[:i+1] matches the text
// ending at the current byte.
type ShiftAnd struct {
	masks  [256]uint64
	accept uint64
	m      int
}

// NewShiftAnd builds the per-byte masks. Patterns longer than
// MaxBitParallel bytes fail with ErrPatternTooLong.
func NewShiftAnd(pattern string) (*ShiftAnd, error) {
	if err := checkBitParallel(pattern); err != nil {
		return nil, err
	}

	s := &ShiftAnd{m: len(pattern), accept: 1 << (len(pattern) - 1)}
	for i := 0; i < len(pattern); i++ {
		s.masks[pattern[i]] |= 1 << i
	}
	return s, nil
}

func (s *ShiftAnd) Index(text string) int {
	if s.m > len(text) {
		return -1
	}

	var state uint64
	for i := 0; i < len(text); i++ {
		state = (state<<1 | 1) & s.masks[text[i]]
		if state&s.accept != 0 {
			return i - s.m + 1
		}
	}
	return -1
}

// ShiftOr is the complemented form of ShiftAnd: a cleared bit means an
// active state, which saves the "| 1" on every step.
type ShiftOr struct {
	masks  [256]uint64
	accept uint64
	m      int
}

// NewShiftOr builds the per-byte masks. Patterns longer than
// MaxBitParallel bytes fail with ErrPatternTooLong.
func NewShiftOr(pattern string) (*ShiftOr, error) {
	if err := checkBitParallel(pattern); err != nil {
		return nil, err
	}

	s := &ShiftOr{m: len(pattern), accept: 1 << (len(pattern) - 1)}
	for i := range s.masks {
		s.masks[i] = ^uint64(0)
	}
	for i := 0; i < len(pattern); i++ {
		s.masks[pattern[i]] &^= 1 << i
	}
	return s, nil
}

func (s *ShiftOr) Index(text string) int {
	if s.m > len(text) {
		return -1
	}

	state := ^uint64(0)
	for i := 0; i < len(text); i++ {
		state = state<<1 | s.masks[text[i]]
		if state&s.accept == 0 {
			return i - s.m + 1
		}
	}
	return -1
}

package ascii

// byteRank is a frequency table for bytes based on corpus analysis.
// Lower rank = rarer byte = better candidate for rare-byte search.
// Derived from memchr's BYTE_FREQUENCIES table (corpus: CIA World Factbook,
// rustc source, Septuaginta). UTF-8 prefix bytes (0xC0-0xFF) are forced to
// 255 since continuation bytes are more discriminating.
var byteRank = [256]byte{
	55, 52, 51, 50, 49, 48, 47, 46, 45, 103, 242, 66, 67, 229, 44, 43, // 0x00 control
	42, 41, 40, 39, 38, 37, 36, 35, 34, 33, 56, 32, 31, 30, 29, 28, // 0x10 control
	255, 148, 164, 149, 136, 160, 155, 173, 221, 222, 134, 122, 232, 202, 215, 224, // 0x20 ' ' is the most common byte
	208, 220, 204, 187, 183, 179, 177, 168, 178, 200, 226, 195, 154, 184, 174, 126, // 0x30 digits
	120, 191, 157, 194, 170, 189, 162, 161, 150, 193, 142, 137, 171, 176, 185, 167, // 0x40 '@', A-O
	186, 112, 175, 192, 188, 156, 140, 143, 123, 133, 128, 147, 138, 146, 114, 223, // 0x50 P-Z
	151, 249, 216, 238, 236, 253, 227, 218, 230, 247, 135, 180, 241, 233, 246, 244, // 0x60 '`', a-o
	231, 139, 245, 243, 251, 235, 201, 196, 240, 214, 152, 182, 205, 181, 127, 27, // 0x70 p-z
	212, 211, 210, 213, 228, 197, 169, 159, 131, 172, 105, 80, 98, 96, 97, 81, // 0x80 continuation
	207, 145, 116, 115, 144, 130, 153, 121, 107, 132, 109, 110, 124, 111, 82, 108, // 0x90
	118, 141, 113, 129, 119, 125, 165, 117, 92, 106, 83, 72, 99, 93, 65, 79, // 0xA0
	166, 237, 163, 199, 190, 225, 209, 203, 198, 217, 219, 206, 234, 248, 158, 239, // 0xB0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xC0 prefix
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xD0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xE0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xF0
}

// ByteRank exposes the default frequency table (read-only).
// To customize rare-byte selection, copy it, modify it and pass it to
// NewSearcherWithRanks.
var ByteRank = byteRank

// BuildRankTable builds a byte frequency table from a corpus sample.
// The most frequent byte gets 255, absent bytes get 0.
func BuildRankTable(corpus string) [256]byte {
	var counts [256]int
	for i := 0; i < len(corpus); i++ {
		counts[corpus[i]]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var ranks [256]byte
	for i := range ranks {
		ranks[i] = byte((counts[i] * 255) / maxCount)
	}
	return ranks
}

// selectRarePair finds the two rarest distinct bytes of pattern in one pass,
// rarest first. A pattern made of a single repeated byte yields its first and
// last offsets.
func selectRarePair(pattern string, ranks []byte) (rare1 byte, off1 int, rare2 byte, off2 int) {
	n := len(pattern)
	if n == 0 {
		return 0, 0, 0, 0
	}
	if n == 1 {
		return pattern[0], 0, pattern[0], 0
	}
	if ranks == nil {
		ranks = byteRank[:]
	}

	best1Idx, best2Idx := 0, -1
	best1Rank, best2Rank := ranks[pattern[0]], byte(0)

	for i := 1; i < n; i++ {
		c := pattern[i]
		r := ranks[c]
		switch {
		case r < best1Rank:
			if c != pattern[best1Idx] {
				best2Idx, best2Rank = best1Idx, best1Rank
			}
			best1Idx, best1Rank = i, r
		case c != pattern[best1Idx] && (best2Idx == -1 || r < best2Rank):
			best2Idx, best2Rank = i, r
		}
	}

	// every byte is the same: spread the probes over the pattern
	if best2Idx == -1 {
		best1Idx, best2Idx = 0, n-1
	}

	return pattern[best1Idx], best1Idx, pattern[best2Idx], best2Idx
}

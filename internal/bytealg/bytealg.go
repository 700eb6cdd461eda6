// Package bytealg holds the exact-match primitives the engines and the
// harness treat as ground truth.
package bytealg

import "strings"

// Index finds the first case-sensitive match of needle in haystack.
func Index(haystack, needle string) int {
	return strings.Index(haystack, needle)
}

// IndexByte finds the first occurrence of c in s.
func IndexByte(s string, c byte) int {
	return strings.IndexByte(s, c)
}

// IndexNaive compares needle at every offset of haystack. It is slow on
// purpose and only serves as an oracle.
func IndexNaive(haystack, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		j := 0
		for j < n && haystack[i+j] == needle[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}

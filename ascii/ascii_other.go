//go:build !amd64

package ascii

// ValidString reports whether s contains only ASCII bytes.
func ValidString(s string) bool {
	return isAsciiGo(s)
}

package common

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatCount formats an integer with thousands separators.
func FormatCount(n int64) string {
	str := fmt.Sprintf("%d", n)

	length := len(str)
	if length <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatRankName renders a shop rank name for display ("cutie" -> "Cutie").
// The first rune is upcased, not the first byte, so multi-byte names stay
// intact.
func FormatRankName(name string) string {
	if name == "" {
		return "None"
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

package card

import (
	"strconv"
	"strings"
)

// InvalidIndex is the sentinel returned by LetterToIndex for anything
// outside A-Z.
const InvalidIndex = -1

// IndexToLetter maps a zero-based option index to its capital-letter
// code: 0 -> "A", 1 -> "B", ... Negative input yields "".
func IndexToLetter(i int) string {
	if i < 0 {
		return ""
	}
	return string(rune('A' + i))
}

// LetterToIndex is the inverse of IndexToLetter, case-insensitive.
// Anything that is not a single A-Z letter returns InvalidIndex.
func LetterToIndex(s string) int {
	r := []rune(s)
	if len(r) != 1 {
		return InvalidIndex
	}
	switch c := r[0]; {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	}
	return InvalidIndex
}

// NormalizeChoiceCode canonicalizes a legacy choice encoding into a
// capital-letter code. All-digit input follows the legacy "0,1,2,..."
// convention and is mapped through IndexToLetter; a single alphabetic
// character is upper-cased. Everything else is rejected (ok=false), so
// call sites must branch on rejection instead of comparing a bogus
// code.
func NormalizeChoiceCode(code string) (letter string, ok bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	if allDigits(code) {
		n, err := strconv.Atoi(code)
		if err != nil {
			return "", false
		}
		return IndexToLetter(n), true
	}
	if idx := LetterToIndex(code); idx != InvalidIndex {
		return IndexToLetter(idx), true
	}
	return "", false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Package strs holds rune-aware string trimming and casing helpers.
package strs

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)

	hasLower = regexp.MustCompile(`\p{Ll}`)
)

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
// Special casings apply, so "ßtraße" becomes "SStraße".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return upper.String(string(r)) + s[size:]
}

// Wordify splits a camelCase or PascalCase identifier into space-separated
// words: "parseHTTPRequest" → "parse HTTP Request". Strings with no lowercase
// letter are returned unchanged.
func Wordify(s string) string {
	if !hasLower.MatchString(s) {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(runes)/2)
	for i, r := range runes {
		if i > 0 && isUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && isLower(runes[i+1])
			// Break before an upper after a lower ("aB"), and before the last
			// upper of an acronym that starts a new word ("HTTPRe").
			if !isSpace(prev) && (!isUpper(prev) || nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveFirst drops the first n runes of s. n <= 0 returns s; n beyond the
// length returns "".
func RemoveFirst(s string, n int) string {
	if n <= 0 {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// RemoveLast drops the last n runes of s, with the same clamping as
// RemoveFirst.
func RemoveLast(s string, n int) string {
	if n <= 0 {
		return s
	}
	end := len(s)
	for ; n > 0 && end > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		end -= size
	}
	return s[:end]
}

// ParseIntOr parses s (surrounding space ignored) as a base-10 int and falls
// back to def on any error.
func ParseIntOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func isUpper(r rune) bool { return unicode.IsUpper(r) }
func isLower(r rune) bool { return unicode.IsLower(r) }
func isSpace(r rune) bool { return unicode.IsSpace(r) }

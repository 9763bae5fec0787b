package scoreboard

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseClock parses "M:S" text into tenths of a second. Either field may have
// any width and trailing text after the seconds is ignored, so "12:30",
// "0:5" and "3:00\n" are all accepted. The result can be negative when the
// minutes are.
func ParseClock(text string) (int, bool) {
	minutes, rest, ok := scanInt(text)
	if !ok || !strings.HasPrefix(rest, ":") {
		return 0, false
	}
	seconds, _, ok := scanInt(rest[1:])
	if !ok {
		return 0, false
	}
	return (minutes*60 + seconds) * 10, true
}

// scanInt reads a decimal integer after optional leading whitespace and
// returns it with the unread remainder.
func scanInt(text string) (int, string, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, text, false
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, text, false
	}
	return n, text[end:], true
}

// Atoi reads a leading decimal integer, ignoring leading whitespace and any
// trailing text. It yields 0 when there is no number.
func Atoi(text string) int {
	n, _, _ := scanInt(text)
	return n
}

package boxtable

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// splitWindows cuts s into successive windows at most width display columns
// wide. The empty string has no windows.
func splitWindows(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var windows []string
	for len(s) > 0 {
		window := runewidth.Truncate(s, width, "")
		if window == "" {
			// A rune wider than the column still has to advance.
			_, size := utf8.DecodeRuneInString(s)
			window = s[:size]
		}
		windows = append(windows, window)
		s = s[len(window):]
	}
	return windows
}

package textreport

import (
	"strings"
	"unicode/utf8"
)

// WrapLines splits text into lines of at most maxLength characters, breaking
// only between words. Whitespace runs collapse to single spaces. A word longer
// than maxLength is placed on a line of its own and left intact.
// Text without words yields no lines.
func WrapLines(text string, maxLength int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineLength := 0

	for _, word := range words {
		wordLength := utf8.RuneCountInString(word)

		if lineLength > 0 && lineLength+1+wordLength > maxLength {
			lines = append(lines, line.String())
			line.Reset()
			lineLength = 0
		}

		if lineLength > 0 {
			line.WriteByte(' ')
			lineLength++
		}
		line.WriteString(word)
		lineLength += wordLength
	}

	return append(lines, line.String())
}

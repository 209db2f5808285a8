// Package textutil formats text for terminal output.
package textutil

import "strings"

// Wrap splits text into lines of at most width bytes, breaking on whitespace. Runs of
// whitespace collapse to a single space. A word longer than width gets a line of its
// own. Empty text yields nil.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line.Len() == 0 && len(word) >= width:
			lines = append(lines, word)
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) > width:
			lines = append(lines, line.String())
			line.Reset()
			if len(word) >= width {
				lines = append(lines, word)
			} else {
				line.WriteString(word)
			}
		default:
			line.WriteByte(' ')
			line.WriteString(word)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

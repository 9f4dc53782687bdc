package suggest

import "strings"

// parseBullets splits a freeform completion into suggestion lines. Leading
// "-" or "*" markers are stripped and blank lines dropped, so a model that
// ignores the formatting instruction still parses.
func parseBullets(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

package docindex

import (
	"regexp"
	"strings"
)

var h1Re = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)

// FirstHeading returns the text of the first H1 ("# ") line in markdown,
// or "" when there is none.
func FirstHeading(markdown string) string {
	for _, match := range h1Re.FindAllStringSubmatch(markdown, -1) {
		if title := strings.TrimSpace(match[1]); title != "" {
			return title
		}
	}
	return ""
}

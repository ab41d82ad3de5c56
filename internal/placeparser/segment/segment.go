// Package segment splits a raw block of copied text into a list title and
// candidate place lines, dropping blank lines and scrape noise before any
// field extraction happens.
package segment

import (
	"regexp"
	"strings"

	"maplist/backend/internal/placeparser/core"
)

const titleMarker = "List Name:"

var (
	newlineRE     = regexp.MustCompile(`\n+`)
	attributionRE = regexp.MustCompile(`^By\s`)
	plusCountRE   = regexp.MustCompile(`^\+\d+$`)
)

// statusPrefixes mark capture-tool progress lines that leak into the
// copied text ("Extraction Complete", "Found 12 places...").
var statusPrefixes = []string{
	"Extraction Complete",
	"Found",
	"Hello",
}

// Segment splits input into a title and candidate entry lines. It is total
// over any string: malformed entries are left for the extractor to reject,
// only known noise is dropped here. A line carrying a closed-venue marker
// never reaches extraction, whatever else it contains.
func Segment(input string) (string, []string) {
	title := core.DefaultListTitle
	lines := make([]string, 0)
	sawFirst := false
	for _, raw := range newlineRE.Split(input, -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !sawFirst {
			sawFirst = true
			if strings.HasPrefix(line, titleMarker) {
				title = strings.TrimSpace(strings.TrimPrefix(line, titleMarker))
				continue
			}
		}
		if isNoise(line) {
			continue
		}
		lines = append(lines, line)
	}
	return title, lines
}

// isNoise handles internal is noise behavior.
func isNoise(line string) bool {
	if strings.HasPrefix(line, titleMarker) {
		return true
	}
	for _, prefix := range statusPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	if attributionRE.MatchString(line) {
		return true
	}
	if plusCountRE.MatchString(line) {
		return true
	}
	switch strings.ToLower(line) {
	case "share", "follow":
		return true
	}
	return strings.Contains(strings.ToLower(line), "permanently closed")
}

package extract

import (
	"regexp"
	"strings"
)

var linkMarkerRE = regexp.MustCompile(`\[LINK:\s*(.*?)\]`)

// CutLinkMarker pulls the URL out of the first [LINK: <url>] marker in the
// line and returns it together with the line with the whole marker removed.
// Lines without a marker come back unchanged.
func CutLinkMarker(line string) (string, string) {
	loc := linkMarkerRE.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", strings.TrimSpace(line)
	}
	url := strings.TrimSpace(line[loc[2]:loc[3]])
	rest := strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
	return url, rest
}

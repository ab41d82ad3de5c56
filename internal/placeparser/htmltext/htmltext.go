// Package htmltext flattens scraped HTML into the line-oriented text the
// segmenter consumes: one delimiter-joined line per feed item, with the
// item's first link carried as a [LINK: url] marker on the same line.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const lineDelimiter = " | "

// LooksLikeHTML reports whether the input is markup rather than copied
// page text. Used by the auto input kind.
func LooksLikeHTML(input string) bool {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") ||
		strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<div")
}

// Flatten converts an HTML document into place-entry text. It walks the
// children of the page's feed container and emits one line per item: the
// item's text nodes joined by the field delimiter, followed by a
// [LINK: url] marker when the item links somewhere. Documents without a
// feed-shaped container fall back to the whole body.
func Flatten(input string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	feedContainer(doc).Children().Each(func(_ int, item *goquery.Selection) {
		line := itemLine(item)
		if line == "" {
			return
		}
		b.WriteString(line)
		b.WriteString("\n")
	})
	return b.String(), nil
}

// feedContainer handles internal feed container behavior.
func feedContainer(doc *goquery.Document) *goquery.Selection {
	if feed := doc.Find(`[role="feed"]`).First(); feed.Length() > 0 {
		return feed
	}
	if main := doc.Find(`[role="main"]`).First(); main.Length() > 0 {
		return main
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// itemLine handles internal item line behavior.
func itemLine(item *goquery.Selection) string {
	segments := make([]string, 0, 8)
	collectTextSegments(item, &segments)
	if len(segments) == 0 {
		return ""
	}
	line := strings.Join(segments, lineDelimiter)
	if href, ok := item.Find("a[href]").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		line += " [LINK: " + strings.TrimSpace(href) + "]"
	}
	return line
}

// collectTextSegments appends every non-empty text node under sel, in
// document order. Each text node becomes one field token on the line.
func collectTextSegments(sel *goquery.Selection, out *[]string) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			if text := strings.TrimSpace(node.Text()); text != "" {
				*out = append(*out, text)
			}
			return
		}
		collectTextSegments(node, out)
	})
}

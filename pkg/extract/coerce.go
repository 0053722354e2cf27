package extract

import (
	"strconv"
	"strings"
	"time"
)

// releaseDateLayout matches the catalog's textual date format,
// e.g. "May 5, 1999".
const releaseDateLayout = "Jan 2, 2006"

// ParseReleaseDate parses the catalog date text. Non-matching text yields
// nil rather than an error; a missing date never discards the record.
func ParseReleaseDate(text string) *time.Time {
	t, err := time.Parse(releaseDateLayout, strings.TrimSpace(text))
	if err != nil {
		return nil
	}
	return &t
}

// ParseMetascore parses the score text as an integer. Placeholder values
// like "tbd" yield nil.
func ParseMetascore(text string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil
	}
	return &n
}

// AbsoluteURL resolves a card link against the catalog origin. Links that
// are already absolute pass through unchanged.
func AbsoluteURL(origin, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return href
}

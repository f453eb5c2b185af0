package parse

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// dateFormats is the ordered list of layouts a regex hit is validated
// against. A candidate that fails every layout is discarded silently;
// garbled fragments are expected in free text.
var dateFormats = []string{
	"2 January 2006",
	"2-Jan-06",
	"2 Jan 2006",
	"January 2, 2006",
	"02/01/2006",
	"2006-01-02",
	"2 January, 2006",
}

var (
	// "23 July 2025" or "23 July, 2025"
	longDateRegex = regexp.MustCompile(`(?i)(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December),?\s+(\d{4})`)
	// "2-Jul-25" or "31-Mar-26"
	shortDateRegex = regexp.MustCompile(`(\d{1,2})-([A-Za-z]{3})-(\d{2})\b`)
)

// parseDateString tries each known layout in order and returns the first
// match.
func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractDates pulls every calendar date embedded in free text. Matches
// come from pattern search, not full-string parsing, so one field may
// yield several dates. The result is deduplicated by calendar value and
// sorted ascending; a field with no valid dates yields an empty slice.
func ExtractDates(text string) []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time

	add := func(t time.Time) {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}

	for _, m := range longDateRegex.FindAllStringSubmatch(text, -1) {
		if t, ok := parseDateString(m[1] + " " + titleMonth(m[2]) + " " + m[3]); ok {
			add(t)
		}
	}

	for _, m := range shortDateRegex.FindAllStringSubmatch(text, -1) {
		// Two-digit years in this corpus always mean 20yy.
		if t, err := time.Parse("2-Jan-2006", m[1]+"-"+titleMonth(m[2])+"-20"+m[3]); err == nil {
			add(t)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// titleMonth canonicalizes month-name capitalization so case-insensitive
// regex hits survive time.Parse.
func titleMonth(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

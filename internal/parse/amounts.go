package parse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Amount extraction rules. Each runs independently against the full text
// (thousands separators stripped first) and their hits are pooled into
// one deduplicated set; there is no sequential narrowing.
var (
	// "1.5 million" / "$2 Million"
	millionWordRegex = regexp.MustCompile(`(?i)\$?\s*(\d+(?:\.\d+)?)\s*million`)
	// "1.5M" — the (?![a-z]) guard from the source is emulated by
	// capturing the rune after the suffix and rejecting lowercase letters,
	// so "5 Metro" or "3mm" do not count.
	mSuffixRegex = regexp.MustCompile(`\$?\s*(\d+(?:\.\d+)?)\s*[Mm]([^a-z]|$)`)
	// "100K"
	kSuffixRegex = regexp.MustCompile(`\$?\s*(\d+(?:\.\d+)?)\s*[Kk]([^a-z]|$)`)
	// "$50000" (commas already stripped)
	dollarAmountRegex = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)
	// bare 5+ digit integer not adjacent to other digits or a $ sign
	standaloneRegex = regexp.MustCompile(`(?:^|[^\d$])(\d{5,})(?:[^\d]|$)`)
)

const (
	minDollarAmount     = 1000
	minStandaloneAmount = 10000
)

// ExtractAmounts pulls every plausible funding magnitude from free text,
// in the field's native currency units. Unit suffixes are applied
// (million/M = 1e6, K = 1e3); small currency mentions and incidental
// numbers are filtered by the per-rule thresholds. The result is
// deduplicated and sorted ascending; no numbers is an empty slice, not
// an error.
func ExtractAmounts(text string) []float64 {
	text = strings.ReplaceAll(text, ",", "")

	seen := make(map[float64]bool)
	var amounts []float64

	add := func(v float64) {
		if !seen[v] {
			seen[v] = true
			amounts = append(amounts, v)
		}
	}

	for _, m := range millionWordRegex.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			add(v * 1_000_000)
		}
	}
	for _, m := range mSuffixRegex.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			add(v * 1_000_000)
		}
	}
	for _, m := range kSuffixRegex.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			add(v * 1_000)
		}
	}
	for _, m := range dollarAmountRegex.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= minDollarAmount {
			add(v)
		}
	}
	for _, m := range standaloneRegex.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= minStandaloneAmount {
			add(v)
		}
	}

	sort.Float64s(amounts)
	return amounts
}

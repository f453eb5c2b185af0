package parse

import (
	"strconv"
	"strings"
	"time"
)

// FormatAmount renders a monetary value as a thousands-grouped,
// zero-decimal string: 1500000 -> "1,500,000".
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 0, 64)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatDate renders a date as ISO 8601 (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DisplayDate renders the record's date field: the primary date, extended
// with " to <secondary>" when a second date was extracted. Empty when no
// date was found.
func (r DeadlineRecord) DisplayDate() string {
	if r.PrimaryDate == nil {
		return ""
	}
	out := FormatDate(*r.PrimaryDate)
	if r.SecondaryDate != nil {
		out += " to " + FormatDate(*r.SecondaryDate)
	}
	return out
}

// DisplayDaysUntil renders the day count as text, or empty when unset.
func (r DeadlineRecord) DisplayDaysUntil() string {
	if r.DaysUntil == nil {
		return ""
	}
	return strconv.Itoa(*r.DaysUntil)
}

// DisplayNotes joins annotation notes with "; " for the output sheet.
func (r DeadlineRecord) DisplayNotes() string {
	return strings.Join(r.Notes, "; ")
}

// DisplayMin renders the minimum amount column, empty when absent.
func (r FundingRecord) DisplayMin() string {
	if r.MinAmount == nil {
		return ""
	}
	return FormatAmount(*r.MinAmount)
}

// DisplayMax renders the maximum amount column, empty when absent.
func (r FundingRecord) DisplayMax() string {
	if r.MaxAmount == nil {
		return ""
	}
	return FormatAmount(*r.MaxAmount)
}

// DisplayAUD renders the reporting-currency column, empty when absent.
func (r FundingRecord) DisplayAUD() string {
	if r.AmountAUD == nil {
		return ""
	}
	return FormatAmount(*r.AmountAUD)
}

// DisplayNotes joins parsing notes with "; " for the output sheet.
func (r FundingRecord) DisplayNotes() string {
	return strings.Join(r.Notes, "; ")
}

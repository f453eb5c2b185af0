package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Keyword rules for deadline classification, tested in priority order.
// First match wins; later rules are never evaluated once one matches.
var (
	rollingWords  = []string{"ongoing", "continuous", "open/continuous", "rolling"}
	annualWords   = []string{"annual", "yearly", "annually"}
	closedWords   = []string{"closed", "completed", "allocated"}
	tbaWords      = []string{"tbc", "to be announced", "tba", "expected", "anticipated"}
	multipleWords = []string{"various", "varies", "multiple", "specific calls"}
)

var (
	roundNumberRegex = regexp.MustCompile(`round\s+(\d+)`)
	clockTimeRegex   = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(am|pm|AEST|AEDT|NZST|NZDT)`)
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// ClassifyDeadline assigns exactly one deadline type to non-empty free
// text. Structural keywords override date extraction: "annual round,
// opens 2 July 2025" is ANNUAL, not SPECIFIC.
func ClassifyDeadline(text string) DeadlineType {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, rollingWords):
		return DeadlineRolling
	case containsAny(lower, annualWords):
		return DeadlineAnnual
	case containsAny(lower, closedWords):
		return DeadlineClosed
	case containsAny(lower, tbaWords):
		return DeadlineTBA
	case containsAny(lower, multipleWords):
		return DeadlineMultiple
	case strings.Contains(lower, "round") && (strings.Contains(lower, "expected") || strings.Contains(lower, "next")):
		return DeadlineNextRound
	}

	if len(ExtractDates(text)) > 0 {
		return DeadlineSpecific
	}
	return DeadlineOther
}

// DeadlineStatusFor derives an urgency status from the classified type,
// the earliest extracted date, and the run's reference date. The 30- and
// 90-day windows are half-open: a date exactly ref+30d is SOON, exactly
// ref+90d is UPCOMING.
func DeadlineStatusFor(dtype DeadlineType, primary *time.Time, ref time.Time) DeadlineStatus {
	switch dtype {
	case DeadlineRolling, DeadlineAnnual, DeadlineMultiple:
		return StatusOngoing
	case DeadlineClosed:
		return StatusClosed
	case DeadlineTBA:
		return StatusTBA
	}

	ref = dayOf(ref)
	if primary != nil {
		switch {
		case primary.Before(ref):
			return StatusPast
		case primary.Before(ref.AddDate(0, 0, 30)):
			return StatusUrgent
		case primary.Before(ref.AddDate(0, 0, 90)):
			return StatusSoon
		default:
			return StatusUpcoming
		}
	}

	return StatusUnknown
}

// BuildDeadlineRecord parses one free-text deadline field into a
// structured record. Empty input is a terminal case, not an error.
func BuildDeadlineRecord(text string, ref time.Time) DeadlineRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return DeadlineRecord{
			Type:   DeadlineUnknown,
			Status: StatusUnknown,
			Notes:  []string{"No deadline information"},
		}
	}

	dtype := ClassifyDeadline(text)
	dates := ExtractDates(text)

	rec := DeadlineRecord{Type: dtype}
	if len(dates) > 0 {
		rec.PrimaryDate = &dates[0]
	}
	if len(dates) > 1 {
		rec.SecondaryDate = &dates[1]
	}

	rec.Status = DeadlineStatusFor(dtype, rec.PrimaryDate, ref)

	if rec.PrimaryDate != nil && rec.Status != StatusPast && rec.Status != StatusClosed {
		days := int(rec.PrimaryDate.Sub(dayOf(ref)).Hours() / 24)
		rec.DaysUntil = &days
	}

	rec.Notes = annotateDeadline(text, dtype)
	return rec
}

// annotateDeadline derives auxiliary notes independently of the primary
// classification; several may co-occur.
func annotateDeadline(text string, dtype DeadlineType) []string {
	lower := strings.ToLower(text)
	var notes []string

	if strings.Contains(lower, "minimum data") {
		notes = append(notes, "Multi-stage application")
	}
	if strings.Contains(lower, "eoi") {
		notes = append(notes, "EOI required")
	}
	if m := roundNumberRegex.FindStringSubmatch(lower); m != nil {
		notes = append(notes, fmt.Sprintf("Round %s", m[1]))
	}
	if clockTimeRegex.MatchString(text) {
		notes = append(notes, "Specific time deadline")
	}

	switch dtype {
	case DeadlineRolling:
		notes = append(notes, "Applications accepted continuously")
	case DeadlineAnnual:
		notes = append(notes, "Annual application cycle")
	case DeadlineMultiple:
		notes = append(notes, "Multiple deadlines throughout year")
	}

	if len(notes) == 0 {
		notes = []string{"Standard deadline"}
	}
	return notes
}

// dayOf truncates a reference timestamp to its calendar day so day
// counts are whole numbers regardless of the caller's clock component.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package parse

import (
	"testing"
	"time"
)

var refDate = time.Date(2025, time.December, 9, 0, 0, 0, 0, time.UTC)

func TestClassifyDeadline(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected DeadlineType
	}{
		{"Rolling basis", "Applications accepted on a rolling basis", DeadlineRolling},
		{"Ongoing", "Ongoing program", DeadlineRolling},
		{"Open continuous", "Open/Continuous", DeadlineRolling},
		{"Annual", "Annual funding round", DeadlineAnnual},
		{"Yearly", "Opens yearly in March", DeadlineAnnual},
		{"Closed", "Round closed", DeadlineClosed},
		{"Allocated", "Funds fully allocated", DeadlineClosed},
		{"TBC", "Round 2 - TBC", DeadlineTBA},
		{"To be announced", "Next intake to be announced", DeadlineTBA},
		{"Anticipated", "Anticipated opening early 2026", DeadlineTBA},
		{"Varies", "Varies by program", DeadlineMultiple},
		{"Specific calls", "Specific calls throughout the year", DeadlineMultiple},
		{"Round plus next", "Round 3 opens next quarter", DeadlineNextRound},
		{"Date found", "Closes 23 July 2025", DeadlineSpecific},
		{"No structure", "Contact the program office", DeadlineOther},
		// Priority: structural keywords beat extractable dates.
		{"Annual overrides date", "Annual round, opens 2 July 2025", DeadlineAnnual},
		{"Rolling overrides date", "Rolling until 31-Mar-26", DeadlineRolling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDeadline(tt.text); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestDeadlineStatusFor_TypeOverrides(t *testing.T) {
	embedded := d(2020, time.January, 1)
	for _, dtype := range []DeadlineType{DeadlineRolling, DeadlineAnnual, DeadlineMultiple} {
		if got := DeadlineStatusFor(dtype, &embedded, refDate); got != StatusOngoing {
			t.Errorf("%s: expected ONGOING regardless of date, got %s", dtype, got)
		}
		if got := DeadlineStatusFor(dtype, nil, refDate); got != StatusOngoing {
			t.Errorf("%s: expected ONGOING without date, got %s", dtype, got)
		}
	}

	if got := DeadlineStatusFor(DeadlineClosed, nil, refDate); got != StatusClosed {
		t.Errorf("expected CLOSED, got %s", got)
	}
	if got := DeadlineStatusFor(DeadlineTBA, nil, refDate); got != StatusTBA {
		t.Errorf("expected TBA, got %s", got)
	}
	if got := DeadlineStatusFor(DeadlineOther, nil, refDate); got != StatusUnknown {
		t.Errorf("expected UNKNOWN, got %s", got)
	}
}

func TestDeadlineStatusFor_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected DeadlineStatus
	}{
		{"Day before reference", refDate.AddDate(0, 0, -1), StatusPast},
		{"Reference date itself", refDate, StatusUrgent},
		{"Day 29", refDate.AddDate(0, 0, 29), StatusUrgent},
		{"Day 30 boundary is SOON", refDate.AddDate(0, 0, 30), StatusSoon},
		{"Day 89", refDate.AddDate(0, 0, 89), StatusSoon},
		{"Day 90 boundary is UPCOMING", refDate.AddDate(0, 0, 90), StatusUpcoming},
		{"Far future", refDate.AddDate(1, 0, 0), StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := tt.date
			if got := DeadlineStatusFor(DeadlineSpecific, &date, refDate); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestBuildDeadlineRecord_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		rec := BuildDeadlineRecord(text, refDate)
		if rec.Type != DeadlineUnknown {
			t.Fatalf("expected UNKNOWN type, got %s", rec.Type)
		}
		if rec.Status != StatusUnknown {
			t.Fatalf("expected UNKNOWN status, got %s", rec.Status)
		}
		if rec.PrimaryDate != nil || rec.SecondaryDate != nil || rec.DaysUntil != nil {
			t.Fatal("expected all optional fields unset")
		}
		if len(rec.Notes) != 1 || rec.Notes[0] != "No deadline information" {
			t.Fatalf("unexpected notes: %v", rec.Notes)
		}
	}
}

func TestBuildDeadlineRecord_PastSpecificDate(t *testing.T) {
	rec := BuildDeadlineRecord("23 July 2025", refDate)
	if rec.Type != DeadlineSpecific {
		t.Fatalf("expected SPECIFIC, got %s", rec.Type)
	}
	if rec.Status != StatusPast {
		t.Fatalf("expected PAST, got %s", rec.Status)
	}
	if rec.DaysUntil != nil {
		t.Fatal("expected no day count for past deadline")
	}
	if rec.DisplayDate() != "2025-07-23" {
		t.Fatalf("unexpected display date %q", rec.DisplayDate())
	}
}

func TestBuildDeadlineRecord_Rolling(t *testing.T) {
	rec := BuildDeadlineRecord("Applications accepted on a rolling basis", refDate)
	if rec.Type != DeadlineRolling {
		t.Fatalf("expected ROLLING, got %s", rec.Type)
	}
	if rec.Status != StatusOngoing {
		t.Fatalf("expected ONGOING, got %s", rec.Status)
	}
	found := false
	for _, n := range rec.Notes {
		if n == "Applications accepted continuously" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected continuous-applications note, got %v", rec.Notes)
	}
}

func TestBuildDeadlineRecord_DaysUntil(t *testing.T) {
	rec := BuildDeadlineRecord("19 December 2025", refDate)
	if rec.Status != StatusUrgent {
		t.Fatalf("expected URGENT, got %s", rec.Status)
	}
	if rec.DaysUntil == nil {
		t.Fatal("expected day count")
	}
	if *rec.DaysUntil != 10 {
		t.Fatalf("expected 10 days, got %d", *rec.DaysUntil)
	}
	if rec.DisplayDaysUntil() != "10" {
		t.Fatalf("unexpected display %q", rec.DisplayDaysUntil())
	}
}

func TestBuildDeadlineRecord_SecondaryDate(t *testing.T) {
	rec := BuildDeadlineRecord("Stage 1 closes 2-Jul-25, stage 2 closes 23-Aug-25", refDate)
	if rec.PrimaryDate == nil || rec.SecondaryDate == nil {
		t.Fatal("expected two dates")
	}
	if rec.DisplayDate() != "2025-07-02 to 2025-08-23" {
		t.Fatalf("unexpected display date %q", rec.DisplayDate())
	}
}

func TestBuildDeadlineRecord_Annotations(t *testing.T) {
	tests := []struct {
		name string
		text string
		note string
	}{
		{"Minimum data", "Minimum data due 2-Jul-25", "Multi-stage application"},
		{"EOI", "EOI closes 23 July 2025", "EOI required"},
		{"Round number", "Round 2 closes 23 July 2025", "Round 2"},
		{"Clock time", "Closes 23 July 2025 5:00 pm AEST", "Specific time deadline"},
		{"Annual note", "Annual intake", "Annual application cycle"},
		{"Multiple note", "Various deadlines", "Multiple deadlines throughout year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := BuildDeadlineRecord(tt.text, refDate)
			for _, n := range rec.Notes {
				if n == tt.note {
					return
				}
			}
			t.Fatalf("expected note %q in %v", tt.note, rec.Notes)
		})
	}
}

func TestBuildDeadlineRecord_StandardDeadlineFallback(t *testing.T) {
	rec := BuildDeadlineRecord("23 July 2025", refDate)
	if len(rec.Notes) != 1 || rec.Notes[0] != "Standard deadline" {
		t.Fatalf("expected standard-deadline fallback, got %v", rec.Notes)
	}
}

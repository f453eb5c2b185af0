package parse

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []time.Time
	}{
		{
			name:     "Long form",
			text:     "Applications close 23 July 2025",
			expected: []time.Time{d(2025, time.July, 23)},
		},
		{
			name:     "Long form with comma",
			text:     "Due 23 July, 2025 at 5pm",
			expected: []time.Time{d(2025, time.July, 23)},
		},
		{
			name:     "Short dashed form",
			text:     "EOI due 2-Jul-25",
			expected: []time.Time{d(2025, time.July, 2)},
		},
		{
			name:     "Short dashed next year",
			text:     "Closes 31-Mar-26",
			expected: []time.Time{d(2026, time.March, 31)},
		},
		{
			name: "Multiple dates sorted ascending",
			text: "Round 1: 23 August 2025, Round 2: 2 February 2025",
			expected: []time.Time{
				d(2025, time.February, 2),
				d(2025, time.August, 23),
			},
		},
		{
			name:     "Duplicate dates collapse",
			text:     "23 July 2025 (extended from 23 July 2025)",
			expected: []time.Time{d(2025, time.July, 23)},
		},
		{
			name:     "Same date in both formats collapses",
			text:     "2 July 2025 (2-Jul-25)",
			expected: []time.Time{d(2025, time.July, 2)},
		},
		{
			name:     "Lowercase month still parses",
			text:     "closes 23 july 2025",
			expected: []time.Time{d(2025, time.July, 23)},
		},
		{
			name:     "Invalid calendar day discarded",
			text:     "31 February 2025",
			expected: nil,
		},
		{
			name:     "No dates",
			text:     "Rolling applications, no fixed date",
			expected: nil,
		},
		{
			name:     "Empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDates(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d dates, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if !got[i].Equal(tt.expected[i]) {
					t.Errorf("date %d: expected %s, got %s", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

package db

import (
	"testing"
	"time"
)

func TestAmountNumeric(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantNil bool
	}{
		{"1,500,000", 1_500_000, false},
		{"50,000", 50_000, false},
		{"2500.5", 2500.5, false},
		{" 1,000 ", 1000, false},
		{"", 0, true},
		{"Variable", 0, true},
	}
	for _, tc := range cases {
		got := amountNumeric(tc.in)
		if tc.wantNil {
			if got != nil {
				t.Errorf("amountNumeric(%q) = %v, want nil", tc.in, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("amountNumeric(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDeadlineDateOf(t *testing.T) {
	if got := deadlineDateOf("2026-06-30"); got == nil || !got.Equal(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("single date not parsed: %v", got)
	}
	// A date range sorts by its first date.
	if got := deadlineDateOf("2026-06-30 to 2026-09-30"); got == nil || !got.Equal(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("range start not parsed: %v", got)
	}
	if got := deadlineDateOf(""); got != nil {
		t.Errorf("empty input should give nil, got %v", got)
	}
	if got := deadlineDateOf("Rolling basis"); got != nil {
		t.Errorf("non-date should give nil, got %v", got)
	}
}

func TestSanitizeStringSlice(t *testing.T) {
	got := sanitizeStringSlice([]string{" #Health ", "", "#NSW", "  "})
	if len(got) != 2 || got[0] != "#Health" || got[1] != "#NSW" {
		t.Errorf("sanitizeStringSlice = %v", got)
	}
}

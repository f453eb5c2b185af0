package parse

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{50_000, "50,000"},
		{1_500_000, "1,500,000"},
		{123_456_789, "123,456,789"},
		{45_500.4, "45,500"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.expected {
			t.Errorf("FormatAmount(%v): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

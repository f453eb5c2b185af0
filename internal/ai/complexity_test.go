package ai

import "testing"

func TestMapComplexityLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Very high - multi-stage review with commercial plans", "Very Complex"},
		{"High administrative burden", "Complex"},
		{"Complex - requires detailed technical, financial, and commercial proposals", "Complex"},
		{"Moderate to complex depending on stream", "Complex"},
		{"Moderate - standard application form", "Moderate"},
		{"Low - simple online form", "Low"},
		{"Simple expression of interest", "Low"},
		{"Varies by funding round", "Varies"},
		{"Depends on the project scale", "Varies"},
		{"not found", ""},
		{"", ""},
		{"something unrecognisable", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := MapComplexityLevel(tc.in); got != tc.want {
				t.Errorf("MapComplexityLevel(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonicalLevel(t *testing.T) {
	if got := canonicalLevel("very complex"); got != "Very Complex" {
		t.Errorf("case-insensitive match failed: %q", got)
	}
	if got := canonicalLevel("Extreme"); got != "" {
		t.Errorf("unknown level should map to empty, got %q", got)
	}
}

package parse

import (
	"testing"
)

func TestExtractAmounts(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []float64
	}{
		{
			name:     "Million word",
			text:     "Up to $1.5 million available",
			expected: []float64{1_500_000},
		},
		{
			name:     "M suffix",
			text:     "Pool of $2M",
			expected: []float64{2_000_000},
		},
		{
			name:     "M suffix does not match words",
			text:     "Funding for 5 Metro regions",
			expected: nil,
		},
		{
			name:     "K suffix",
			text:     "Grants of 100K each",
			expected: []float64{100_000},
		},
		{
			name:     "Dollar amount with commas",
			text:     "Up to $50,000 per annum over 3 years",
			expected: []float64{50_000},
		},
		{
			name:     "Small dollar mention filtered",
			text:     "A $50 application fee applies",
			expected: nil,
		},
		{
			name:     "Standalone five digit number",
			text:     "awards of 25000 available",
			expected: []float64{25_000},
		},
		{
			name:     "Short standalone number filtered",
			text:     "founded in 1998",
			expected: nil,
		},
		{
			name:     "Range pools and sorts",
			text:     "$10,000 to $50,000",
			expected: []float64{10_000, 50_000},
		},
		{
			name:     "Duplicate values across rules collapse",
			text:     "$1,000,000 (1M) available",
			expected: []float64{1_000_000},
		},
		{
			name:     "Tiered amounts",
			text:     "AUD $1.5 million (Tier 1) or AUD $500,000 (Tier 2)",
			expected: []float64{500_000, 1_500_000},
		},
		{
			name:     "No numbers",
			text:     "Varies by project scope",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmounts(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestExtractAmounts_OrderIndependent(t *testing.T) {
	a := ExtractAmounts("$10,000 minimum, $50,000 maximum")
	b := ExtractAmounts("$50,000 maximum, $10,000 minimum")
	if len(a) != len(b) {
		t.Fatalf("candidate sets differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("candidate sets differ: %v vs %v", a, b)
		}
	}
}

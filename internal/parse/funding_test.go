package parse

import "testing"

func TestBuildFundingRecord_EmptyField(t *testing.T) {
	rec := BuildFundingRecord("  ", DefaultRateTable())
	if rec.Confidence != ConfidenceNone {
		t.Fatalf("expected NONE, got %s", rec.Confidence)
	}
	if rec.Currency != CurrencyUnknown {
		t.Fatalf("expected UNKNOWN currency, got %s", rec.Currency)
	}
	if rec.MinAmount != nil || rec.MaxAmount != nil || rec.AmountAUD != nil {
		t.Fatal("expected no amounts")
	}
	if rec.DisplayNotes() != "Empty field" {
		t.Fatalf("unexpected notes %q", rec.DisplayNotes())
	}
}

func TestBuildFundingRecord_Variable(t *testing.T) {
	for _, text := range []string{"Varies", "Variable, depends on scope", "Not specified"} {
		rec := BuildFundingRecord(text, DefaultRateTable())
		if rec.Confidence != ConfidenceVariable {
			t.Fatalf("%q: expected VARIABLE, got %s", text, rec.Confidence)
		}
		if rec.MaxAmount != nil {
			t.Fatalf("%q: expected no amounts", text)
		}
		if rec.Currency != CurrencyUnknown {
			t.Fatalf("%q: expected UNKNOWN currency", text)
		}
	}
}

func TestBuildFundingRecord_Percentage(t *testing.T) {
	rec := BuildFundingRecord("Covers 50% of eligible project costs", DefaultRateTable())
	if rec.Confidence != ConfidencePercentage {
		t.Fatalf("expected PERCENTAGE, got %s", rec.Confidence)
	}
	if rec.MaxAmount != nil {
		t.Fatal("expected no amounts")
	}
}

func TestBuildFundingRecord_PercentageWithDollarCapIsAmount(t *testing.T) {
	// A capped co-funding ratio still carries an extractable amount.
	rec := BuildFundingRecord("50% of costs up to $10,000", DefaultRateTable())
	if rec.Confidence == ConfidencePercentage {
		t.Fatal("dollar-capped percentage should not classify as PERCENTAGE")
	}
	if rec.MaxAmount == nil || *rec.MaxAmount != 10_000 {
		t.Fatalf("expected max 10000, got %v", rec.MaxAmount)
	}
}

func TestBuildFundingRecord_NoNumbers(t *testing.T) {
	rec := BuildFundingRecord("Funding available in AUD", DefaultRateTable())
	if rec.Confidence != ConfidenceLow {
		t.Fatalf("expected LOW, got %s", rec.Confidence)
	}
	// Currency is still reported even without a parseable magnitude.
	if rec.Currency != AUD {
		t.Fatalf("expected AUD, got %s", rec.Currency)
	}
	if rec.DisplayNotes() != "No numbers found" {
		t.Fatalf("unexpected notes %q", rec.DisplayNotes())
	}
}

func TestBuildFundingRecord_SingleAmountHighConfidence(t *testing.T) {
	rec := BuildFundingRecord("Up to $50,000 per annum over 3 years", DefaultRateTable())
	if rec.Confidence != ConfidenceHigh {
		t.Fatalf("expected HIGH, got %s", rec.Confidence)
	}
	if rec.MinAmount == nil || *rec.MinAmount != 50_000 {
		t.Fatalf("expected min 50000, got %v", rec.MinAmount)
	}
	if rec.MaxAmount == nil || *rec.MaxAmount != 50_000 {
		t.Fatalf("expected max 50000, got %v", rec.MaxAmount)
	}
	if rec.Currency != AUD {
		t.Fatalf("expected AUD default, got %s", rec.Currency)
	}
	if rec.AmountAUD == nil || *rec.AmountAUD != 50_000 {
		t.Fatalf("expected 50000 AUD, got %v", rec.AmountAUD)
	}

	expected := []string{"Up to amount", "Per annum amount", "Multi-year total"}
	if len(rec.Notes) != len(expected) {
		t.Fatalf("expected notes %v, got %v", expected, rec.Notes)
	}
	for i, n := range expected {
		if rec.Notes[i] != n {
			t.Fatalf("expected notes %v, got %v", expected, rec.Notes)
		}
	}
}

func TestBuildFundingRecord_TieredRangeMedium(t *testing.T) {
	rec := BuildFundingRecord("AUD $1.5 million (Tier 1) or AUD $500,000 (Tier 2)", DefaultRateTable())
	if rec.Confidence != ConfidenceMedium {
		t.Fatalf("expected MEDIUM, got %s", rec.Confidence)
	}
	if rec.MinAmount == nil || *rec.MinAmount != 500_000 {
		t.Fatalf("expected min 500000, got %v", rec.MinAmount)
	}
	if rec.MaxAmount == nil || *rec.MaxAmount != 1_500_000 {
		t.Fatalf("expected max 1500000, got %v", rec.MaxAmount)
	}
	if rec.AmountAUD == nil || *rec.AmountAUD != 1_500_000 {
		t.Fatalf("expected 1500000 AUD, got %v", rec.AmountAUD)
	}

	wantRange, wantTier := false, false
	for _, n := range rec.Notes {
		if n == "Range: 500,000 - 1,500,000" {
			wantRange = true
		}
		if n == "Tiered/multi-stream funding" {
			wantTier = true
		}
	}
	if !wantRange || !wantTier {
		t.Fatalf("expected range and tier notes, got %v", rec.Notes)
	}
}

func TestBuildFundingRecord_MultipleCurrenciesDowngrade(t *testing.T) {
	rec := BuildFundingRecord("USD 50,000 (approx AUD 76,000)", DefaultRateTable())
	if rec.Confidence != ConfidenceMedium {
		t.Fatalf("expected MEDIUM, got %s", rec.Confidence)
	}
	if rec.Currency != USD {
		t.Fatalf("expected USD (first match wins), got %s", rec.Currency)
	}
	found := false
	for _, n := range rec.Notes {
		if n == "Multiple currencies mentioned" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected multiple-currencies note, got %v", rec.Notes)
	}
}

func TestBuildFundingRecord_ConversionUsesMax(t *testing.T) {
	table := DefaultRateTable()
	rec := BuildFundingRecord("GBP 10,000 to 20,000", table)
	want := 20_000 * table.RateFor(GBP)
	if rec.AmountAUD == nil || *rec.AmountAUD != want {
		t.Fatalf("expected max-based conversion %v, got %v", want, rec.AmountAUD)
	}
}

func TestBuildFundingRecord_StandardAmountFallback(t *testing.T) {
	rec := BuildFundingRecord("$25,000", DefaultRateTable())
	if rec.Confidence != ConfidenceHigh {
		t.Fatalf("expected HIGH, got %s", rec.Confidence)
	}
	if rec.DisplayNotes() != "Standard amount" {
		t.Fatalf("unexpected notes %q", rec.DisplayNotes())
	}
}

func TestBuildFundingRecord_Idempotent(t *testing.T) {
	texts := []string{
		"Up to $50,000 per annum over 3 years",
		"AUD $1.5 million (Tier 1) or AUD $500,000 (Tier 2)",
		"Varies",
		"",
	}
	table := DefaultRateTable()
	for _, text := range texts {
		a := BuildFundingRecord(text, table)
		b := BuildFundingRecord(text, table)
		if a.Confidence != b.Confidence || a.Currency != b.Currency ||
			a.DisplayMin() != b.DisplayMin() || a.DisplayMax() != b.DisplayMax() ||
			a.DisplayAUD() != b.DisplayAUD() || a.DisplayNotes() != b.DisplayNotes() {
			t.Fatalf("%q: repeated parse diverged", text)
		}
	}
}

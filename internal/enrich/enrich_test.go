package enrich

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/akeane/grantsheet/internal/parse"
)

var testRef = time.Date(2025, time.December, 9, 0, 0, 0, 0, time.UTC)

func testEnricher() *Enricher {
	return NewEnricher(testRef, parse.DefaultRateTable())
}

func TestEnrichDeadlineRow(t *testing.T) {
	row := Row{
		ColGrantName:           "Test Grant",
		ColApplicationDeadline: "23 July 2025",
	}

	out := testEnricher().EnrichDeadlineRow(row)
	if out[ColDeadlineType] != "SPECIFIC" {
		t.Fatalf("expected SPECIFIC, got %s", out[ColDeadlineType])
	}
	if out[ColDeadlineStatus] != "PAST" {
		t.Fatalf("expected PAST, got %s", out[ColDeadlineStatus])
	}
	if out[ColDeadlineDate] != "2025-07-23" {
		t.Fatalf("unexpected date %q", out[ColDeadlineDate])
	}
	if out[ColDaysUntil] != "" {
		t.Fatalf("expected empty day count for past deadline, got %q", out[ColDaysUntil])
	}

	// Input row must not be mutated.
	if _, ok := row[ColDeadlineType]; ok {
		t.Fatal("enrichment mutated the input row")
	}
}

func TestEnrichFundingRow(t *testing.T) {
	row := Row{
		ColGrantName:     "Test Grant",
		ColFundingAmount: "Up to $50,000 per annum over 3 years",
	}

	out := testEnricher().EnrichFundingRow(row)
	if out[ColParsingConfidence] != "HIGH" {
		t.Fatalf("expected HIGH, got %s", out[ColParsingConfidence])
	}
	if out[ColFundingMax] != "50,000" {
		t.Fatalf("unexpected max %q", out[ColFundingMax])
	}
	if out[ColFundingCurrency] != "AUD" {
		t.Fatalf("unexpected currency %q", out[ColFundingCurrency])
	}
	if out[ColFundingAUD] != "50,000" {
		t.Fatalf("unexpected AUD amount %q", out[ColFundingAUD])
	}
	if out[ColParsingNotes] != "Up to amount; Per annum amount; Multi-year total" {
		t.Fatalf("unexpected notes %q", out[ColParsingNotes])
	}
}

func TestEnrichSheet_PreservesRowOrderAndStats(t *testing.T) {
	sheet := &Sheet{
		Columns: []string{ColGrantName, ColApplicationDeadline, ColFundingAmount},
		Rows: []Row{
			{ColGrantName: "A", ColApplicationDeadline: "Rolling", ColFundingAmount: "$25,000"},
			{ColGrantName: "B", ColApplicationDeadline: "", ColFundingAmount: ""},
			{ColGrantName: "C", ColApplicationDeadline: "19 December 2025", ColFundingAmount: "Varies"},
		},
	}

	deadline, funding, stats := testEnricher().EnrichSheet(sheet)

	for i, name := range []string{"A", "B", "C"} {
		if deadline.Rows[i][ColGrantName] != name || funding.Rows[i][ColGrantName] != name {
			t.Fatalf("row order changed at %d", i)
		}
	}

	if stats.Total != 3 {
		t.Fatalf("expected 3 rows, got %d", stats.Total)
	}
	if stats.TypeCounts["ROLLING"] != 1 || stats.TypeCounts["UNKNOWN"] != 1 || stats.TypeCounts["SPECIFIC"] != 1 {
		t.Fatalf("unexpected type counts %v", stats.TypeCounts)
	}
	if stats.ConfidenceCounts["HIGH"] != 1 || stats.ConfidenceCounts["NONE"] != 1 || stats.ConfidenceCounts["VARIABLE"] != 1 {
		t.Fatalf("unexpected confidence counts %v", stats.ConfidenceCounts)
	}
	if len(stats.Urgent) != 1 || stats.Urgent[0][ColGrantName] != "C" {
		t.Fatalf("expected one urgent row (C), got %v", stats.Urgent)
	}
}

func TestSheetRoundTrip(t *testing.T) {
	in := "Grant Name,Application Deadline,Funding Amount\n" +
		"Alpha,23 July 2025,\"Up to $50,000\"\n" +
		"Beta,Rolling,Varies\n"

	sheet, err := parseSheet(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows[0][ColFundingAmount] != "Up to $50,000" {
		t.Fatalf("quoted field mangled: %q", sheet.Rows[0][ColFundingAmount])
	}

	var buf bytes.Buffer
	if err := writeSheet(&buf, sheet); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	again, err := parseSheet(&buf)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if len(again.Rows) != 2 || again.Rows[1][ColGrantName] != "Beta" {
		t.Fatalf("round trip mangled rows: %+v", again.Rows)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	// Re-running the pipeline on its own output's source fields yields
	// identical derived columns.
	e := testEnricher()
	row := Row{
		ColGrantName:           "Gamma",
		ColApplicationDeadline: "Round 2 closes 31-Mar-26, 5:00 pm AEDT",
		ColFundingAmount:       "AUD $1.5 million (Tier 1) or AUD $500,000 (Tier 2)",
	}

	first := e.EnrichFundingRow(e.EnrichDeadlineRow(row))
	second := e.EnrichFundingRow(e.EnrichDeadlineRow(first))

	for _, col := range append(append([]string(nil), deadlineColumns...), fundingColumns...) {
		if first[col] != second[col] {
			t.Fatalf("column %s diverged: %q vs %q", col, first[col], second[col])
		}
	}
}

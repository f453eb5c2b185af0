package enrich

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Column names of the grants sheet. The input columns come from the
// extraction agent; the derived columns are appended by the enricher.
const (
	ColGrantName           = "Grant Name"
	ColAdministeringBody   = "Administering Body"
	ColGrantPurpose        = "Grant Purpose"
	ColApplicationDeadline = "Application Deadline"
	ColFundingAmount       = "Funding Amount"
	ColCoContribution      = "Co-contribution Requirements"
	ColEligibility         = "Eligibility Criteria"
	ColAssessment          = "Assessment Criteria"
	ColComplexity          = "Application Complexity"
	ColWebLink             = "Web Link"
	ColComplexityLevel     = "Level of Complexity"

	ColDeadlineType   = "Deadline Type"
	ColDeadlineDate   = "Deadline Date"
	ColDeadlineStatus = "Deadline Status"
	ColDaysUntil      = "Days Until Deadline"
	ColDeadlineNotes  = "Deadline Notes"

	ColFundingMin        = "Funding Min Amount"
	ColFundingMax        = "Funding Max Amount"
	ColFundingCurrency   = "Funding Currency"
	ColFundingAUD        = "Funding Amount (AUD)"
	ColParsingConfidence = "Parsing Confidence"
	ColParsingNotes      = "Parsing Notes"

	ColTags = "Tags"
)

// Row is one sheet row keyed by column name.
type Row map[string]string

// Sheet is an in-memory CSV table. Columns keeps the header order; Rows
// keeps the input row order, which the pipeline never reorders.
type Sheet struct {
	Columns []string
	Rows    []Row
}

// ReadSheet loads a CSV file into memory. A missing or unreadable file is
// fatal for the run; it is the only error class that aborts processing.
func ReadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input sheet: %w", err)
	}
	defer f.Close()

	return parseSheet(f)
}

func parseSheet(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows happen in hand-edited sheets

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read sheet header: %w", err)
	}

	sheet := &Sheet{Columns: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sheet row: %w", err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// WriteSheet writes the table back out, preserving column and row order.
func WriteSheet(path string, sheet *Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output sheet: %w", err)
	}
	defer f.Close()

	return writeSheet(f, sheet)
}

func writeSheet(w io.Writer, sheet *Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sheet.Columns); err != nil {
		return fmt.Errorf("write sheet header: %w", err)
	}

	record := make([]string, len(sheet.Columns))
	for _, row := range sheet.Rows {
		for i, col := range sheet.Columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write sheet row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// appendColumns extends the header with columns not already present.
func appendColumns(columns []string, extra ...string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	for _, c := range extra {
		if !present[c] {
			columns = append(columns, c)
			present[c] = true
		}
	}
	return columns
}

// cloneRow copies a row so enrichment never mutates caller data.
func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

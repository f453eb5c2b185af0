package enrich

import (
	"time"

	"github.com/akeane/grantsheet/internal/parse"
)

// Enricher applies the parsing engine to every row of a grants sheet.
// Its configuration is explicit and immutable: the reference date and
// rate table are fixed for the whole run so identical input always
// yields identical output.
type Enricher struct {
	ReferenceDate time.Time
	Rates         parse.RateTable
}

// NewEnricher builds an enricher for one run.
func NewEnricher(ref time.Time, rates parse.RateTable) *Enricher {
	return &Enricher{ReferenceDate: ref, Rates: rates}
}

// deadlineColumns and fundingColumns are the derived columns, in output
// order.
var deadlineColumns = []string{
	ColDeadlineType, ColDeadlineDate, ColDeadlineStatus, ColDaysUntil, ColDeadlineNotes,
}

var fundingColumns = []string{
	ColFundingMin, ColFundingMax, ColFundingCurrency, ColFundingAUD,
	ColParsingConfidence, ColParsingNotes,
}

// EnrichDeadlineRow derives the deadline columns for one row. Rows are
// independent; the input row is never mutated.
func (e *Enricher) EnrichDeadlineRow(row Row) Row {
	out := cloneRow(row)

	dl := parse.BuildDeadlineRecord(row[ColApplicationDeadline], e.ReferenceDate)
	out[ColDeadlineType] = string(dl.Type)
	out[ColDeadlineDate] = dl.DisplayDate()
	out[ColDeadlineStatus] = string(dl.Status)
	out[ColDaysUntil] = dl.DisplayDaysUntil()
	out[ColDeadlineNotes] = dl.DisplayNotes()

	return out
}

// EnrichFundingRow derives the funding columns for one row.
func (e *Enricher) EnrichFundingRow(row Row) Row {
	out := cloneRow(row)

	fr := parse.BuildFundingRecord(row[ColFundingAmount], e.Rates)
	out[ColFundingMin] = fr.DisplayMin()
	out[ColFundingMax] = fr.DisplayMax()
	out[ColFundingCurrency] = string(fr.Currency)
	out[ColFundingAUD] = fr.DisplayAUD()
	out[ColParsingConfidence] = string(fr.Confidence)
	out[ColParsingNotes] = fr.DisplayNotes()

	return out
}

// EnrichSheet runs both parsers over a whole sheet and returns the
// deadline-enriched and funding-enriched variants plus run statistics.
// Row order always matches the input.
func (e *Enricher) EnrichSheet(sheet *Sheet) (deadline, funding *Sheet, stats *RunStats) {
	deadline = &Sheet{
		Columns: appendColumns(append([]string(nil), sheet.Columns...), deadlineColumns...),
	}
	funding = &Sheet{
		Columns: appendColumns(append([]string(nil), sheet.Columns...), fundingColumns...),
	}

	stats = NewRunStats()
	for _, row := range sheet.Rows {
		dl := e.EnrichDeadlineRow(row)
		fn := e.EnrichFundingRow(row)
		deadline.Rows = append(deadline.Rows, dl)
		funding.Rows = append(funding.Rows, fn)
		stats.RecordDeadline(dl)
		stats.RecordFunding(fn)
	}

	return deadline, funding, stats
}

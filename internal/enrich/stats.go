package enrich

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RunStats accumulates the per-run breakdowns the pipeline reports after
// processing a sheet.
type RunStats struct {
	Total            int
	TypeCounts       map[string]int
	StatusCounts     map[string]int
	ConfidenceCounts map[string]int
	Urgent           []Row
}

func NewRunStats() *RunStats {
	return &RunStats{
		TypeCounts:       make(map[string]int),
		StatusCounts:     make(map[string]int),
		ConfidenceCounts: make(map[string]int),
	}
}

// RecordDeadline tallies one deadline-enriched row.
func (s *RunStats) RecordDeadline(row Row) {
	s.Total++
	s.TypeCounts[row[ColDeadlineType]]++
	s.StatusCounts[row[ColDeadlineStatus]]++
	if row[ColDeadlineStatus] == "URGENT" {
		s.Urgent = append(s.Urgent, row)
	}
}

// RecordFunding tallies one funding-enriched row.
func (s *RunStats) RecordFunding(row Row) {
	s.ConfidenceCounts[row[ColParsingConfidence]]++
}

// Render writes the run breakdown tables to w.
func (s *RunStats) Render(w io.Writer) {
	fmt.Fprintf(w, "Total grants processed: %d\n\n", s.Total)

	renderCounts(w, "Deadline Type", s.TypeCounts, s.Total)
	renderCounts(w, "Deadline Status", s.StatusCounts, s.Total)
	renderCounts(w, "Parsing Confidence", s.ConfidenceCounts, s.Total)

	if len(s.Urgent) > 0 {
		fmt.Fprintf(w, "\nUrgent deadlines (within 30 days):\n")
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Grant", "Deadline", "Days"})
		for _, row := range s.Urgent {
			t.AppendRow(table.Row{row[ColGrantName], row[ColDeadlineDate], row[ColDaysUntil]})
		}
		t.Render()
	}
}

func renderCounts(w io.Writer, title string, counts map[string]int, total int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	// Highest count first, name as tiebreaker.
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{title, "Count", "Share"})
	for _, k := range keys {
		share := ""
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", float64(counts[k])/float64(total)*100)
		}
		t.AppendRow(table.Row{k, counts[k], share})
	}
	t.Render()
	fmt.Fprintln(w)
}

// RenderTagReport writes the tag frequency table for a sheet.
func RenderTagReport(w io.Writer, sheet *Sheet) {
	counts := TagFrequencies(sheet)
	keys := make([]string, 0, len(counts))
	totalOccurrences := 0
	for k, c := range counts {
		keys = append(keys, k)
		totalOccurrences += c
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Tag", "Frequency"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, counts[k]})
	}
	t.Render()

	fmt.Fprintf(w, "\nUnique tags: %d, total occurrences: %d\n", len(counts), totalOccurrences)
}

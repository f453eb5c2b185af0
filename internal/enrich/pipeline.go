package enrich

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"strings"
	"time"

	"github.com/akeane/grantsheet/internal/models"
	"github.com/akeane/grantsheet/internal/parse"
	"github.com/google/uuid"
)

// Pipeline is the batch transform: read the raw grants sheet, derive the
// deadline and funding columns, generate tags, and write the complete
// sheet. It holds only immutable run configuration.
type Pipeline struct {
	Enricher *Enricher
}

func NewPipeline(ref time.Time, rates parse.RateTable) *Pipeline {
	return &Pipeline{Enricher: NewEnricher(ref, rates)}
}

// Run processes inputPath into outputPath and reports run statistics to
// statsOut. Per-row parse failures never abort the run; only a missing
// or malformed input file is fatal.
func (p *Pipeline) Run(inputPath, outputPath string, statsOut io.Writer) (*RunStats, error) {
	sheet, err := ReadSheet(inputPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d grants from %s", len(sheet.Rows), inputPath)

	deadline, funding, stats := p.Enricher.EnrichSheet(sheet)
	merged := MergeSheets(sheet, funding, deadline)

	for _, row := range merged.Rows {
		row[ColTags] = strings.Join(GenerateTags(row), " ")
	}

	if err := WriteSheet(outputPath, merged); err != nil {
		return nil, err
	}
	log.Printf("Wrote %d enriched grants to %s", len(merged.Rows), outputPath)

	if statsOut != nil {
		stats.Render(statsOut)
	}
	return stats, nil
}

// ToGrant converts an enriched row into the stored model. The content
// hash covers the raw extracted fields so re-discovered grants dedupe.
func ToGrant(row Row) models.Grant {
	return models.Grant{
		ID:                    uuid.New(),
		Name:                  row[ColGrantName],
		AdministeringBody:     row[ColAdministeringBody],
		Purpose:               row[ColGrantPurpose],
		DeadlineRaw:           row[ColApplicationDeadline],
		FundingAmountRaw:      row[ColFundingAmount],
		CoContribution:        row[ColCoContribution],
		Eligibility:           row[ColEligibility],
		AssessmentCriteria:    row[ColAssessment],
		ApplicationComplexity: row[ColComplexity],
		ComplexityLevel:       row[ColComplexityLevel],
		WebLink:               row[ColWebLink],
		DeadlineType:          row[ColDeadlineType],
		DeadlineDate:          row[ColDeadlineDate],
		DeadlineStatus:        row[ColDeadlineStatus],
		DaysUntil:             row[ColDaysUntil],
		DeadlineNotes:         row[ColDeadlineNotes],
		FundingMin:            row[ColFundingMin],
		FundingMax:            row[ColFundingMax],
		FundingCurrency:       row[ColFundingCurrency],
		FundingAmountAUD:      row[ColFundingAUD],
		ParsingConfidence:     row[ColParsingConfidence],
		ParsingNotes:          row[ColParsingNotes],
		Tags:                  GenerateTags(row),
		ContentHash:           ContentHash(row),
	}
}

// GrantRow rebuilds the raw sheet row for a stored grant, so the engine
// can rederive its columns.
func GrantRow(g models.Grant) Row {
	return Row{
		ColGrantName:           g.Name,
		ColAdministeringBody:   g.AdministeringBody,
		ColGrantPurpose:        g.Purpose,
		ColApplicationDeadline: g.DeadlineRaw,
		ColFundingAmount:       g.FundingAmountRaw,
		ColCoContribution:      g.CoContribution,
		ColEligibility:         g.Eligibility,
		ColAssessment:          g.AssessmentCriteria,
		ColComplexity:          g.ApplicationComplexity,
		ColComplexityLevel:     g.ComplexityLevel,
		ColWebLink:             g.WebLink,
	}
}

// Reparse rederives the deadline, funding and tag columns of a stored
// grant from its raw fields. Raw fields and identity never change.
func (p *Pipeline) Reparse(g models.Grant) models.Grant {
	row := p.Enricher.EnrichFundingRow(p.Enricher.EnrichDeadlineRow(GrantRow(g)))

	g.DeadlineType = row[ColDeadlineType]
	g.DeadlineDate = row[ColDeadlineDate]
	g.DeadlineStatus = row[ColDeadlineStatus]
	g.DaysUntil = row[ColDaysUntil]
	g.DeadlineNotes = row[ColDeadlineNotes]
	g.FundingMin = row[ColFundingMin]
	g.FundingMax = row[ColFundingMax]
	g.FundingCurrency = row[ColFundingCurrency]
	g.FundingAmountAUD = row[ColFundingAUD]
	g.ParsingConfidence = row[ColParsingConfidence]
	g.ParsingNotes = row[ColParsingNotes]
	g.Tags = GenerateTags(row)
	return g
}

// ContentHash fingerprints the raw extracted fields of a grant row for
// deduplication across scraper runs.
func ContentHash(row Row) string {
	h := sha256.New()
	for _, col := range []string{ColGrantName, ColAdministeringBody, ColApplicationDeadline, ColFundingAmount, ColWebLink} {
		io.WriteString(h, row[col])
		io.WriteString(h, "\x00")
	}
	return hex.EncodeToString(h.Sum(nil))
}

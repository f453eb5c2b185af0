package models

import (
	"time"

	"github.com/google/uuid"
)

// Grant is one funding opportunity row: the raw free-text fields the
// extractor produced plus the typed columns the parsing engine derived
// from them.
type Grant struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	AdministeringBody string    `json:"administering_body"`
	Purpose           string    `json:"purpose"`

	// Raw free-text fields, kept verbatim so reparsing is always possible.
	DeadlineRaw           string `json:"deadline_raw"`
	FundingAmountRaw      string `json:"funding_amount_raw"`
	CoContribution        string `json:"co_contribution"`
	Eligibility           string `json:"eligibility"`
	AssessmentCriteria    string `json:"assessment_criteria"`
	ApplicationComplexity string `json:"application_complexity"`
	ComplexityLevel       string `json:"complexity_level"`
	WebLink               string `json:"web_link"`

	// Derived deadline columns.
	DeadlineType   string `json:"deadline_type"`
	DeadlineDate   string `json:"deadline_date"` // ISO, or "<d1> to <d2>"
	DeadlineStatus string `json:"deadline_status"`
	DaysUntil      string `json:"days_until"`
	DeadlineNotes  string `json:"deadline_notes"`

	// Derived funding columns.
	FundingMin        string `json:"funding_min"`
	FundingMax        string `json:"funding_max"`
	FundingCurrency   string `json:"funding_currency"`
	FundingAmountAUD  string `json:"funding_amount_aud"`
	ParsingConfidence string `json:"parsing_confidence"`
	ParsingNotes      string `json:"parsing_notes"`

	Tags        []string  `json:"tags"`
	ContentHash string    `json:"content_hash"`
	Embedding   []float32 `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

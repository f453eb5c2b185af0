package parse

import "time"

// DeadlineType is the structural category of a deadline description,
// independent of whether urgency can be computed from it.
type DeadlineType string

const (
	DeadlineSpecific  DeadlineType = "SPECIFIC"
	DeadlineRolling   DeadlineType = "ROLLING"
	DeadlineAnnual    DeadlineType = "ANNUAL"
	DeadlineClosed    DeadlineType = "CLOSED"
	DeadlineTBA       DeadlineType = "TBA"
	DeadlineMultiple  DeadlineType = "MULTIPLE"
	DeadlineNextRound DeadlineType = "NEXT_ROUND"
	DeadlineOther     DeadlineType = "OTHER"
	DeadlineUnknown   DeadlineType = "UNKNOWN"
)

// DeadlineStatus is the urgency of a deadline relative to a reference date.
type DeadlineStatus string

const (
	StatusOngoing  DeadlineStatus = "ONGOING"
	StatusClosed   DeadlineStatus = "CLOSED"
	StatusTBA      DeadlineStatus = "TBA"
	StatusPast     DeadlineStatus = "PAST"
	StatusUrgent   DeadlineStatus = "URGENT"
	StatusSoon     DeadlineStatus = "SOON"
	StatusUpcoming DeadlineStatus = "UPCOMING"
	StatusUnknown  DeadlineStatus = "UNKNOWN"
)

// Currency is one of the fixed set this corpus cares about.
type Currency string

const (
	AUD             Currency = "AUD"
	NZD             Currency = "NZD"
	USD             Currency = "USD"
	CAD             Currency = "CAD"
	GBP             Currency = "GBP"
	EUR             Currency = "EUR"
	CurrencyUnknown Currency = "UNKNOWN"
)

// Confidence grades how trustworthy an extracted funding amount is.
type Confidence string

const (
	ConfidenceHigh       Confidence = "HIGH"
	ConfidenceMedium     Confidence = "MEDIUM"
	ConfidenceLow        Confidence = "LOW"
	ConfidenceVariable   Confidence = "VARIABLE"
	ConfidencePercentage Confidence = "PERCENTAGE"
	ConfidenceNone       Confidence = "NONE"
)

// DeadlineRecord is the structured result of parsing one deadline field.
// DaysUntil is set only when PrimaryDate is set and Status is neither
// PAST nor CLOSED.
type DeadlineRecord struct {
	Type          DeadlineType
	PrimaryDate   *time.Time
	SecondaryDate *time.Time
	Status        DeadlineStatus
	DaysUntil     *int
	Notes         []string
}

// FundingRecord is the structured result of parsing one funding field.
// AmountAUD is set iff MaxAmount is set; it is MaxAmount converted with
// the run's rate table.
type FundingRecord struct {
	MinAmount  *float64
	MaxAmount  *float64
	Currency   Currency
	AmountAUD  *float64
	Confidence Confidence
	Notes      []string
}

// RateTable maps currencies to fixed conversion rates into the reporting
// currency. It is configuration: built once per run, never mutated.
type RateTable struct {
	rates map[Currency]float64
}

// NewRateTable builds a table from explicit rates. The reporting anchor
// (AUD = 1.0) is always present even if the input omits it.
func NewRateTable(rates map[Currency]float64) RateTable {
	m := make(map[Currency]float64, len(rates)+1)
	for c, r := range rates {
		if r > 0 {
			m[c] = r
		}
	}
	m[AUD] = 1.0
	return RateTable{rates: m}
}

// DefaultRateTable returns the fixed table used when no configuration is
// supplied (approximate rates, Dec 2024).
func DefaultRateTable() RateTable {
	return NewRateTable(map[Currency]float64{
		AUD: 1.0,
		NZD: 0.91,
		USD: 1.52,
		CAD: 1.09,
		GBP: 1.93,
		EUR: 1.63,
	})
}

// RateFor returns the conversion rate for a currency. Unknown currencies
// are treated as already being in the reporting currency (rate 1.0); this
// is a documented approximation, not a failure.
func (t RateTable) RateFor(c Currency) float64 {
	if r, ok := t.rates[c]; ok {
		return r
	}
	return 1.0
}

// ToReportingCurrency converts an amount in the given currency into the
// reporting currency (AUD).
func (t RateTable) ToReportingCurrency(amount float64, c Currency) float64 {
	return amount * t.RateFor(c)
}

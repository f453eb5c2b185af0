package parse

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	variableWords = []string{"variable", "varies", "not specified", "unspecified"}

	upToRegex        = regexp.MustCompile(`(?i)up to`)
	tieredRegex      = regexp.MustCompile(`(?i)tier|stream|phase`)
	perAnnumRegex    = regexp.MustCompile(`(?i)per annum|per year|p\.a\.|annually`)
	multiYearRegex   = regexp.MustCompile(`(?i)(over|for) \d+ years?`)
	dollarDigitRegex = regexp.MustCompile(`\$\s*\d`)
)

// BuildFundingRecord parses one free-text funding field into a structured
// record with a confidence grade. The special-case rules short-circuit in
// order: empty field, variable/unspecified language, percentage-based
// funding, then numeric extraction.
func BuildFundingRecord(text string, rates RateTable) FundingRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return FundingRecord{
			Currency:   CurrencyUnknown,
			Confidence: ConfidenceNone,
			Notes:      []string{"Empty field"},
		}
	}

	lower := strings.ToLower(text)
	if containsAny(lower, variableWords) {
		return FundingRecord{
			Currency:   CurrencyUnknown,
			Confidence: ConfidenceVariable,
			Notes:      []string{"Variable or unspecified amount"},
		}
	}

	// Percentage-of-cost funding carries no extractable magnitude. A "%"
	// only counts when the text has no dollar-prefixed digit anywhere;
	// "50% of costs up to $10,000" is still an amount field.
	if strings.Contains(text, "%") && !dollarDigitRegex.MatchString(text) {
		return FundingRecord{
			Currency:   CurrencyUnknown,
			Confidence: ConfidencePercentage,
			Notes:      []string{"Percentage-based funding"},
		}
	}

	currency := DetectCurrency(text)
	amounts := ExtractAmounts(text)

	if len(amounts) == 0 {
		return FundingRecord{
			Currency:   currency,
			Confidence: ConfidenceLow,
			Notes:      []string{"No numbers found"},
		}
	}

	minAmount := amounts[0]
	maxAmount := amounts[len(amounts)-1]
	amountAUD := rates.ToReportingCurrency(maxAmount, currency)

	confidence := ConfidenceHigh
	var notes []string

	if upToRegex.MatchString(text) {
		notes = append(notes, "Up to amount")
	}
	if len(amounts) > 1 {
		notes = append(notes, fmt.Sprintf("Range: %s - %s", FormatAmount(minAmount), FormatAmount(maxAmount)))
		confidence = ConfidenceMedium
	}
	if tieredRegex.MatchString(text) {
		notes = append(notes, "Tiered/multi-stream funding")
		confidence = ConfidenceMedium
	}
	if perAnnumRegex.MatchString(text) {
		notes = append(notes, "Per annum amount")
	}
	if multiYearRegex.MatchString(text) {
		notes = append(notes, "Multi-year total")
	}
	if countCurrencyMentions(text) > 1 {
		notes = append(notes, "Multiple currencies mentioned")
		confidence = ConfidenceMedium
	}

	if len(notes) == 0 {
		notes = []string{"Standard amount"}
	}

	return FundingRecord{
		MinAmount:  &minAmount,
		MaxAmount:  &maxAmount,
		Currency:   currency,
		AmountAUD:  &amountAUD,
		Confidence: confidence,
		Notes:      notes,
	}
}

package enrich

// FinalColumns is the column order of the merged output sheet.
var FinalColumns = []string{
	ColGrantName,
	ColAdministeringBody,
	ColGrantPurpose,
	ColApplicationDeadline,
	ColDeadlineType,
	ColDeadlineDate,
	ColDeadlineStatus,
	ColDaysUntil,
	ColDeadlineNotes,
	ColFundingAmount,
	ColFundingMin,
	ColFundingMax,
	ColFundingCurrency,
	ColFundingAUD,
	ColParsingConfidence,
	ColParsingNotes,
	ColCoContribution,
	ColEligibility,
	ColAssessment,
	ColComplexity,
	ColWebLink,
	ColComplexityLevel,
	ColTags,
}

// MergeSheets combines the original sheet with the deadline-enriched and
// funding-enriched variants into one table with FinalColumns. Rows are
// matched by grant name; for every column the precedence is a fixed
// override chain: deadline sheet first, then funding sheet, then the
// original. Row order follows the original sheet.
func MergeSheets(original, funding, deadline *Sheet) *Sheet {
	fundingByName := indexByName(funding)
	deadlineByName := indexByName(deadline)

	out := &Sheet{Columns: append([]string(nil), FinalColumns...)}
	for _, orig := range original.Rows {
		name := orig[ColGrantName]
		fund := fundingByName[name]
		dead := deadlineByName[name]

		merged := make(Row, len(FinalColumns))
		for _, col := range FinalColumns {
			switch {
			case dead != nil && dead[col] != "":
				merged[col] = dead[col]
			case fund != nil && fund[col] != "":
				merged[col] = fund[col]
			default:
				merged[col] = orig[col]
			}
		}
		out.Rows = append(out.Rows, merged)
	}

	return out
}

func indexByName(sheet *Sheet) map[string]Row {
	if sheet == nil {
		return nil
	}
	byName := make(map[string]Row, len(sheet.Rows))
	for _, row := range sheet.Rows {
		byName[row[ColGrantName]] = row
	}
	return byName
}

package enrich

import (
	"sort"
	"strings"
)

// topicTags maps keywords in the grant name/purpose to topic tags.
// Ordered so output is stable.
var topicTags = []struct {
	keyword string
	tag     string
}{
	{"research", "#Research"},
	{"health", "#Health"},
	{"medical", "#Medical"},
	{"innovation", "#Innovation"},
	{"innovative", "#Innovation"},
	{"mrff", "#MRFF"},
	{"clinical", "#Clinical"},
	{"trial", "#ClinicalTrials"},
	{"stem cell", "#StemCell"},
	{"cardiovascular", "#Cardiovascular"},
	{"cancer", "#Cancer"},
	{"dementia", "#Dementia"},
	{"ageing", "#Dementia"},
	{"diabetes", "#Diabetes"},
}

var nzIndicators = []string{
	"new zealand", "nz", "mbie", "tec", "hrc", "callaghan innovation",
	"ministry of business, innovation and employment", "tertiary education commission",
	"health research council of new zealand",
}

var internationalIndicators = []string{
	"gates foundation", "bill & melinda gates", "unesco", "chan zuckerberg",
	"wellcome trust", "open philanthropy", "global innovation fund",
	"grand challenges canada", "american australian association",
}

var australianIndicators = []string{
	"australian", "australia", "commonwealth", "federal", "nhmrc", "arc",
	"csiro", "austcyber", "arena", "ato", "mrff",
}

var commonwealthIndicators = []string{
	"commonwealth", "federal", "australian government",
	"nhmrc", "arc", "csiro", "ato", "mrff", "austcyber", "arena",
}

// stateIndicators is checked in order; the first matching state wins.
var stateIndicators = []struct {
	tag        string
	indicators []string
}{
	{"#NSW", []string{"nsw", "new south wales", "sydney", "investment nsw"}},
	{"#Victoria", []string{"victoria", "victorian", "melbourne", "vic"}},
	{"#Queensland", []string{"queensland", "qld", "brisbane"}},
	{"#WesternAustralia", []string{"western australia", "wa", "perth"}},
	{"#SouthAustralia", []string{"south australia", "sa", "adelaide"}},
	{"#Tasmania", []string{"tasmania", "tas", "hobart", "tasmanian"}},
	{"#NorthernTerritory", []string{"northern territory", "nt", "darwin"}},
	{"#ACT", []string{"act", "australian capital territory", "canberra"}},
}

func containsAnyOf(text string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}

// GeographicTags classifies the administering body into a region. New
// Zealand and international funders are terminal; Australian funders may
// additionally get Commonwealth and state tags.
func GeographicTags(administeringBody string) []string {
	body := strings.ToLower(administeringBody)

	if containsAnyOf(body, nzIndicators) {
		return []string{"#NewZealand"}
	}
	if containsAnyOf(body, internationalIndicators) {
		return []string{"#International"}
	}

	var tags []string
	if containsAnyOf(body, australianIndicators) {
		tags = append(tags, "#Australia")
		if containsAnyOf(body, commonwealthIndicators) {
			tags = append(tags, "#Commonwealth")
		}
		for _, state := range stateIndicators {
			if containsAnyOf(body, state.indicators) {
				tags = append(tags, state.tag)
				break
			}
		}
	}
	return tags
}

// GenerateTags derives the tag set for one grant row from keyword
// membership: topic tags from name+purpose, geographic and organization
// tags from the administering body, and a complexity tag. The result is
// deduplicated and sorted for stable output.
func GenerateTags(row Row) []string {
	searchable := strings.ToLower(row[ColGrantName] + " " + row[ColGrantPurpose])
	body := strings.ToLower(row[ColAdministeringBody])

	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, t := range topicTags {
		if strings.Contains(searchable, t.keyword) {
			add(t.tag)
		}
	}
	if strings.Contains(searchable, "digital") && (strings.Contains(searchable, "transformation") || strings.Contains(searchable, "transform")) {
		add("#DigitalTransformation")
	}
	if strings.Contains(searchable, "workforce") && strings.Contains(searchable, "health") {
		add("#HealthWorkforce")
		if strings.Contains(searchable, "digital") {
			add("#DigitalHealthWorkforce")
		}
	}
	if strings.Contains(searchable, "digital") && strings.Contains(searchable, "health") {
		add("#DigitalHealth")
	}

	for _, tag := range GeographicTags(row[ColAdministeringBody]) {
		add(tag)
	}
	if strings.Contains(body, "nhmrc") {
		add("#NHMRC")
	}
	if strings.Contains(body, "arc") {
		add("#ARC")
	}

	if level := strings.TrimSpace(row[ColComplexityLevel]); level != "" {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(level)
		add("#" + cleaned)
	}

	sort.Strings(tags)
	return tags
}

// TagFrequencies counts tag occurrences across a whole sheet.
func TagFrequencies(sheet *Sheet) map[string]int {
	counts := make(map[string]int)
	for _, row := range sheet.Rows {
		for _, tag := range GenerateTags(row) {
			counts[tag]++
		}
	}
	return counts
}

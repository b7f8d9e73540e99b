// ABOUTME: Query builder converts a company profile into a web-search query
// ABOUTME: Location terms are pushed early because geography narrows relevance the most

package discovery

import (
	"strings"

	"opportunity-discovery-api/core/domain"
)

// Fixed discovery terms that seed every company query.
var discoveryTerms = []string{"government contract opportunity", "solicitation", "RFP"}

// maxQueryNAICSCodes caps how many NAICS codes are appended to a query.
// Codes beyond the cap are dropped to bound query length.
const maxQueryNAICSCodes = 3

// maxQueryLocalities caps how many entries from the cities/counties lists
// are appended to a query.
const maxQueryLocalities = 2

// BuildCompanyQuery converts a company profile into a single search query.
// Terms are appended in a fixed priority order: discovery terms, locality,
// industry, NAICS codes, business type. Absent fields are skipped; an empty
// profile still yields a valid generic query.
func BuildCompanyQuery(profile domain.CompanyProfile) string {
	terms := make([]string, 0, 12)
	terms = append(terms, discoveryTerms...)

	// Locality terms are additive, not mutually exclusive. Lists are
	// preferred sources but city/state still follow when present.
	terms = append(terms, capList(profile.Cities, maxQueryLocalities)...)
	terms = append(terms, capList(profile.Counties, maxQueryLocalities)...)

	if profile.City != "" && profile.State != "" {
		terms = append(terms, profile.City, profile.State)
	} else if profile.State != "" {
		terms = append(terms, profile.State)
	}

	if profile.Industry != "" {
		terms = append(terms, profile.Industry)
	}

	if len(profile.NAICSCodes) > 0 {
		terms = append(terms, "NAICS")
		terms = append(terms, capList(profile.NAICSCodes, maxQueryNAICSCodes)...)
	}

	if profile.BusinessType != "" {
		terms = append(terms, profile.BusinessType)
	}

	return strings.Join(terms, " ")
}

// capList returns at most max leading entries of list.
func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}

// ABOUTME: Heuristic classification of search results as procurement opportunities
// ABOUTME: Separates genuine listings from SEO-optimized educational content

package discovery

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"opportunity-discovery-api/core/domain"
)

// excludeKeywords mark informational or blog content. Search results for
// contracting queries are dominated by compliance blogs and "what is NAICS"
// explainers that share vocabulary with genuine listings.
var excludeKeywords = []string{
	"blog",
	"article",
	"guide",
	"how to",
	"understanding",
	"what are",
	"101",
	"decoded",
	"top codes",
	"list of",
	"importance of",
	"why they matter",
	"naics codes by domain",
	"main page",
	"homepage",
	"browse opportunities",
	"search opportunities",
}

// excludePaths mark site navigation pages rather than individual listings.
var excludePaths = []string{
	"/home",
	"/search",
	"/browse",
	"/index",
	"/main",
	"/about",
	"/contact",
	"/help",
	"/faq",
	"/blog",
	"/news",
	"/resources",
	"/guides",
	"/naics-codes",
	"/top-codes",
	"/list",
}

// overridePaths are specific opportunity paths that override an
// exclude-path match. A URL containing both /blog/ and /contract/ is
// treated as an opportunity.
var overridePaths = []string{
	"/opportunity/",
	"/solicitation/",
	"/rfp/",
	"/contract/",
}

// opportunityPaths are path segments recognized as pointing at an
// individual opportunity on any domain.
var opportunityPaths = []string{
	"/opportunity/",
	"/opportunities/",
	"/opp/",
	"/solicitation/",
	"/solicitations/",
	"/rfp/",
	"/rfq/",
	"/bid/",
	"/bids/",
	"/contract/",
	"/award/",
	"/notice/",
}

// opportunityDomains is the allowlist of known opportunity-publishing hosts.
var opportunityDomains = []string{
	"sam.gov",
	"beta.sam.gov",
	"grants.gov",
	"usaspending.gov",
	"contracts.gov",
	"fbo.gov",
	"govtribe.com",
	"governmentcontracts.us",
}

// samGovPaths are the path segments sam.gov uses for individual notices.
// Main listing pages on sam.gov are never opportunities, so the domain
// alone is not enough.
var samGovPaths = []string{
	"/opp/",
	"/opportunity/",
	"/opportunities/",
	"/entity/",
	"/view",
	"/award/",
	"/contract/",
	"/notice/",
}

// opportunityIndicators are phrases specific to procurement notices, used
// for .gov pages outside the allowlist.
var opportunityIndicators = []string{
	"solicitation",
	"rfp",
	"rfq",
	"contract opportunity",
	"pre-solicitation",
	"sources sought",
	"notice id",
	"opportunity id",
	"award id",
	"contract number",
	"solicitation number",
}

// listingPaths mark aggregate listing pages that are not individual notices.
var listingPaths = []string{"/list", "/search", "/browse", "/index"}

// govMarkers are host substrings that indicate a government site.
var govMarkers = []string{".gov", ".mil", ".state.", ".county.", ".city."}

// govKeywords are loose government-contracting vocabulary for the
// fallback classification.
var govKeywords = []string{
	"government",
	"federal",
	"contract",
	"solicitation",
	"rfp",
	"rfq",
	"bid",
	"procurement",
	"sam.gov",
	"grants.gov",
	"usaspending",
	"gsa",
}

// IsActualOpportunity reports whether a result points at a specific,
// individually identifiable procurement listing rather than informational
// content. Rules are evaluated in order; the first matching rule decides.
func IsActualOpportunity(result domain.SearchResult) bool {
	text := strings.ToLower(result.Title + " " + result.Description)
	lowerURL := strings.ToLower(result.URL)
	path := urlPath(result.URL)

	// Rule 1: informational/blog signals in the combined text.
	if containsAny(text, excludeKeywords) {
		return false
	}

	// Rule 2: site navigation pages, unless a specific opportunity path
	// overrides the exclusion.
	if containsAny(path, excludePaths) && !containsAny(lowerURL, overridePaths) {
		return false
	}

	// Rule 3: known opportunity-publishing domains, with per-domain rules.
	host := strings.ToLower(result.Domain)
	for _, known := range opportunityDomains {
		if !hostMatches(host, known) {
			continue
		}
		switch known {
		case "sam.gov", "beta.sam.gov":
			return containsAny(lowerURL, samGovPaths) || hasUUIDSegment(path)
		case "governmentcontracts.us":
			return containsAny(lowerURL, opportunityPaths)
		default:
			if containsAny(lowerURL, opportunityPaths) {
				return true
			}
		}
		break
	}

	// Rule 4: a recognized opportunity path on any domain.
	if containsAny(lowerURL, opportunityPaths) {
		return true
	}

	// Rule 5: a .gov page that is not a bare root or listing page and
	// carries opportunity-specific vocabulary.
	if strings.Contains(host, ".gov") && !isRootPage(path) &&
		containsAny(text, opportunityIndicators) && !containsAny(path, listingPaths) {
		return true
	}

	return false
}

// IsGovernmentRelated reports whether a result is at least government
// related. It is the loose fallback used when strict classification leaves
// nothing, so a niche-locality query still surfaces something useful.
func IsGovernmentRelated(result domain.SearchResult) bool {
	host := strings.ToLower(result.Domain)
	lowerURL := strings.ToLower(result.URL)

	if containsAny(host, govMarkers) || containsAny(lowerURL, govMarkers) {
		return true
	}

	text := strings.ToLower(result.Title + " " + result.Description)
	return containsAny(text, govKeywords)
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hostMatches reports whether host is the given domain or a subdomain of it.
func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// urlPath returns the lowercased path component of raw, or the whole
// lowercased URL when it cannot be parsed.
func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	return strings.ToLower(u.Path)
}

// isRootPage reports whether path is a bare site root.
func isRootPage(path string) bool {
	return path == "" || path == "/"
}

// hasUUIDSegment reports whether any path segment is a UUID. sam.gov
// identifies individual notices by UUID-shaped segments.
func hasUUIDSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if len(segment) != 36 {
			continue
		}
		if _, err := uuid.Parse(segment); err == nil {
			return true
		}
	}
	return false
}

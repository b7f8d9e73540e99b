// ABOUTME: Company profile domain model used to drive opportunity discovery
// ABOUTME: Owned by the persistence layer; immutable for the duration of a search

package domain

// CompanyProfile describes the company a search is performed for.
// All fields are optional; absent fields are simply skipped by the
// query builder and scorer.
type CompanyProfile struct {
	// ID identifies the company record in storage
	ID string `json:"id,omitempty"`

	// Name is the company's display name
	Name string `json:"name,omitempty"`

	// Industry is a free-form industry description, e.g. "Construction"
	Industry string `json:"industry,omitempty"`

	// City and State locate the company when no locality lists are set
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`

	// NAICSCodes is ordered; only the first three codes are used in queries
	NAICSCodes []string `json:"naics_codes,omitempty"`

	// BusinessType is a designation such as "Small Business" or "8(a)"
	BusinessType string `json:"business_type,omitempty"`

	// Counties and Cities are preferred over City/State for query locality
	Counties []string `json:"counties,omitempty"`
	Cities   []string `json:"cities,omitempty"`
}

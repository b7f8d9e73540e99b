// ABOUTME: Search domain models for opportunity discovery results
// ABOUTME: Defines structures for results returned by the web-search provider

package domain

// SearchResult represents a single web-search hit from the provider
type SearchResult struct {
	// Title is the page title
	Title string `json:"title"`

	// URL is the absolute page URL
	URL string `json:"url"`

	// Description is the provider's snippet for the page
	Description string `json:"description"`

	// Domain is the host derived from URL, empty if URL fails to parse
	Domain string `json:"domain"`

	// PublishedDate is the provider's publication date, passed through as-is
	PublishedDate string `json:"published_date,omitempty"`

	// Rank is the 1-based position in the provider's original ordering.
	// It is assigned once at parse time and never renumbered, even after
	// filtering; the scorer relies on it as a relevance-decay signal.
	Rank int `json:"rank"`
}

// ScoredResult is a search result with a relevance score attached
type ScoredResult struct {
	SearchResult

	// Score is the relevance score, always >= 0
	Score int `json:"score"`
}

// SearchResponse is the filtered result set for one provider call
type SearchResponse struct {
	// Query is the exact string sent to the provider, after any
	// government-site augmentation
	Query string `json:"query"`

	// Results holds the surviving results in original provider order
	Results []SearchResult `json:"results"`

	// TotalResults equals len(Results)
	TotalResults int `json:"total_results"`
}

// SearchOptions configures a single search call
type SearchOptions struct {
	// Count is the number of results requested from the provider
	Count int

	// FilterGov enables query augmentation and the fallback filter chain
	FilterGov bool

	// Freshness restricts results by age: "day", "week", "month" or "year"
	Freshness string
}

// DefaultSearchOptions returns the options used when the caller does not
// override anything: 10 results with government filtering enabled.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Count:     10,
		FilterGov: true,
	}
}

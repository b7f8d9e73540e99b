// ABOUTME: Discovery service issues web-search calls and filters for real opportunities
// ABOUTME: Provides business logic for opportunity search independent of HTTP layer

package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"opportunity-discovery-api/core/domain"
	coreerrors "opportunity-discovery-api/core/errors"
	"opportunity-discovery-api/core/interfaces"
)

const (
	providerName    = "brave"
	defaultEndpoint = "https://api.search.brave.com/res/v1/web/search"

	// govSiteClause is appended to the sent query when government filtering
	// is enabled. The returned SearchResponse.Query reflects the augmented
	// string, not the caller's original input.
	govSiteClause = `(site:.gov OR site:.mil OR "government contracts")`

	defaultResultCount = 10
)

// freshnessCodes maps the public freshness options to the provider's codes.
var freshnessCodes = map[string]string{
	"day":   "pd",
	"week":  "pw",
	"month": "pm",
	"year":  "py",
}

// Config holds the discovery service configuration
type Config struct {
	// APIKey is the search provider subscription token. An empty key is a
	// configuration failure reported at call time, not at construction.
	APIKey string

	// Endpoint overrides the provider endpoint, used in tests
	Endpoint string

	// RateLimit caps outbound provider calls per second. Zero disables
	// client-side limiting; the provider free tier allows roughly one
	// request per second.
	RateLimit float64
}

// Service performs opportunity discovery searches against the web-search
// provider. Construct once and reuse; the constructor's only real cost is
// reading the API key.
type Service struct {
	deps     interfaces.Dependencies
	apiKey   string
	endpoint string
	limiter  *rate.Limiter
}

// NewService creates a new discovery service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Service{
		deps:     deps,
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		limiter:  limiter,
	}
}

// braveResponse mirrors the provider's web-search payload. Absence of the
// web.results array is tolerated and treated as zero results.
type braveResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

type braveResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	PublishedDate string `json:"published_date"`
	Age           string `json:"age"`
}

// SearchOpportunities issues a single provider call for the given query and
// returns the filtered results. When opts.FilterGov is set the query is
// augmented with a government-site clause and results go through a
// three-tier fallback filter: strict opportunity classification, then .gov
// domains, then loose government-related classification. The first tier
// that keeps anything wins.
func (s *Service) SearchOpportunities(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	if s.apiKey == "" {
		return nil, &coreerrors.ConfigurationError{
			Setting: "BRAVE_SEARCH_API_KEY",
			Message: "search provider API key is not configured",
		}
	}

	if query == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "cannot be empty"}
	}

	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.ConfigurationError{
			Setting: "HTTPClient",
			Message: "HTTP client not configured",
		}
	}

	sentQuery := query
	if opts.FilterGov {
		sentQuery = query + " " + govSiteClause
	}

	count := opts.Count
	if count <= 0 {
		count = defaultResultCount
	}

	requestURL := s.buildRequestURL(sentQuery, count, opts.Freshness)

	// Callers must serialize calls anyway if they expect to exceed the
	// provider's free-tier rate limit; the limiter just smooths bursts.
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, requestURL, map[string]string{
		"Accept":               "application/json",
		"X-Subscription-Token": s.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("search provider request failed: %w", err)
	}
	defer resp.Body().Close()

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Body:       string(bodyBytes),
		}
	}

	var payload braveResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := parseResults(payload.Web.Results)

	if opts.FilterGov {
		results = filterGovernmentResults(results)
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Search completed", map[string]interface{}{
			"query":    sentQuery,
			"returned": len(payload.Web.Results),
			"kept":     len(results),
		})
	}

	return &domain.SearchResponse{
		Query:        sentQuery,
		Results:      results,
		TotalResults: len(results),
	}, nil
}

// buildRequestURL assembles the provider GET URL with fixed parameters for
// plain English-language US results.
func (s *Service) buildRequestURL(query string, count int, freshness string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("text_decorations", "false")
	params.Set("search_lang", "en")
	params.Set("country", "US")
	if code, ok := freshnessCodes[freshness]; ok {
		params.Set("freshness", code)
	}
	return s.endpoint + "?" + params.Encode()
}

// parseResults converts raw provider hits into domain results. Rank is the
// 1-based position in the provider array; this is the only point rank is
// ever assigned, filtering never renumbers it.
func parseResults(raw []braveResult) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(raw))
	for i, hit := range raw {
		published := hit.PublishedDate
		if published == "" {
			published = hit.Age
		}
		results = append(results, domain.SearchResult{
			Title:         hit.Title,
			URL:           hit.URL,
			Description:   hit.Description,
			Domain:        domainFromURL(hit.URL),
			PublishedDate: published,
			Rank:          i + 1,
		})
	}
	return results
}

// filterTier is one stage of the fallback filter chain.
type filterTier struct {
	name string
	keep func(domain.SearchResult) bool
}

// govFilterTiers is ordered; each tier is tried only if the previous tier
// kept nothing. This is a fallback chain, not a union.
var govFilterTiers = []filterTier{
	{name: "actual-opportunity", keep: IsActualOpportunity},
	{name: "gov-domain", keep: isGovDomain},
	{name: "government-related", keep: IsGovernmentRelated},
}

// filterGovernmentResults runs the fallback chain and returns the first
// non-empty tier's survivors, in original order.
func filterGovernmentResults(results []domain.SearchResult) []domain.SearchResult {
	for _, tier := range govFilterTiers {
		kept := make([]domain.SearchResult, 0, len(results))
		for _, result := range results {
			if tier.keep(result) {
				kept = append(kept, result)
			}
		}
		if len(kept) > 0 {
			return kept
		}
	}
	return []domain.SearchResult{}
}

// isGovDomain is the middle filter tier: anything on a .gov host or with
// .gov in the URL.
func isGovDomain(result domain.SearchResult) bool {
	return strings.Contains(strings.ToLower(result.Domain), ".gov") ||
		strings.Contains(strings.ToLower(result.URL), ".gov")
}

// domainFromURL derives the host from a result URL. Parse failures are
// swallowed so one malformed result cannot poison the batch; the domain
// simply becomes empty.
func domainFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

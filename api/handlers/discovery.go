// ABOUTME: Discovery handlers for the Huma API
// ABOUTME: Provides the admin endpoint that searches and scores opportunities for a company

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"opportunity-discovery-api/core/discovery"
	"opportunity-discovery-api/core/domain"
	"opportunity-discovery-api/core/interfaces"
)

// SearchService defines the methods needed from the discovery service
type SearchService interface {
	SearchOpportunities(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}

// EnrichmentPrefetcher warms the enrichment cache in the background
type EnrichmentPrefetcher interface {
	PrefetchEnrichment(ctx context.Context, urls []string)
}

// DiscoveryHandler handles opportunity discovery requests
type DiscoveryHandler struct {
	searchService SearchService
	companies     interfaces.CompanyStorage
	prefetcher    EnrichmentPrefetcher
}

// NewDiscoveryHandler creates a new discovery handler. The prefetcher is
// optional; without it results are simply not pre-enriched.
func NewDiscoveryHandler(searchService SearchService, companies interfaces.CompanyStorage, prefetcher EnrichmentPrefetcher) *DiscoveryHandler {
	return &DiscoveryHandler{
		searchService: searchService,
		companies:     companies,
		prefetcher:    prefetcher,
	}
}

// RegisterRoutes registers discovery routes
func (h *DiscoveryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchOpportunities",
		Method:      http.MethodPost,
		Path:        "/api/admin/search-opportunities",
		Summary:     "Search contract opportunities for a company",
		Description: "Builds a search query from the company profile, runs it against the web-search provider and returns scored results",
		Tags:        []string{"Discovery"},
	}, h.SearchOpportunities)
}

// SearchOpportunitiesInput defines the input for the search operation.
// Field names follow the admin-review frontend's existing request shape.
type SearchOpportunitiesInput struct {
	Body struct {
		RequestID string `json:"requestId,omitempty" doc:"Caller correlation ID, echoed back"`
		CompanyID string `json:"companyId" doc:"Company profile to search for"`
		Count     int    `json:"count,omitempty" doc:"Number of results to request (default 10)"`
		Freshness string `json:"freshness,omitempty" enum:"day,week,month,year" doc:"Restrict results by age" required:"false"`
	}
}

// SearchOpportunitiesOutput defines the output for the search operation
type SearchOpportunitiesOutput struct {
	Body struct {
		RequestID    string                `json:"requestId,omitempty" doc:"Echo of the caller correlation ID"`
		Query        string                `json:"query" doc:"The query sent to the provider, after augmentation"`
		Results      []domain.ScoredResult `json:"results" doc:"Scored results, highest score first"`
		TotalResults int                   `json:"total_results" doc:"Number of results returned"`
	}
}

// SearchOpportunities handles POST /api/admin/search-opportunities
func (h *DiscoveryHandler) SearchOpportunities(ctx context.Context, input *SearchOpportunitiesInput) (*SearchOpportunitiesOutput, error) {
	if input.Body.CompanyID == "" {
		return nil, huma.Error400BadRequest("companyId is required")
	}

	profile, err := h.companies.Get(ctx, input.Body.CompanyID)
	if err != nil {
		return nil, toHumaError(err)
	}

	query := discovery.BuildCompanyQuery(*profile)

	opts := domain.DefaultSearchOptions()
	if input.Body.Count > 0 {
		opts.Count = input.Body.Count
	}
	opts.Freshness = input.Body.Freshness

	resp, err := h.searchService.SearchOpportunities(ctx, query, opts)
	if err != nil {
		return nil, toHumaError(err)
	}

	scored := discovery.ScoreResults(resp.Results, *profile)

	if h.prefetcher != nil && len(scored) > 0 {
		urls := make([]string, 0, len(scored))
		for _, r := range scored {
			urls = append(urls, r.URL)
		}
		// Detached so the background scrape survives this request ending.
		h.prefetcher.PrefetchEnrichment(context.WithoutCancel(ctx), urls)
	}

	output := &SearchOpportunitiesOutput{}
	output.Body.RequestID = input.Body.RequestID
	output.Body.Query = resp.Query
	output.Body.Results = scored
	output.Body.TotalResults = len(scored)
	return output, nil
}

package handlers

import (
	"bytes"
	"context"
	"io"
	"sync"

	"opportunity-discovery-api/core/domain"
	"opportunity-discovery-api/core/interfaces"
)

// mockSearchService is a mock implementation of the discovery service
type mockSearchService struct {
	searchFunc func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}

func (m *mockSearchService) SearchOpportunities(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, opts)
	}
	return &domain.SearchResponse{Query: query, Results: []domain.SearchResult{}}, nil
}

// mockCompanyStorage is an in-memory CompanyStorage
type mockCompanyStorage struct {
	getFunc  func(ctx context.Context, id string) (*domain.CompanyProfile, error)
	saveFunc func(ctx context.Context, profile *domain.CompanyProfile) error
}

func (m *mockCompanyStorage) Get(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.CompanyProfile{ID: id}, nil
}

func (m *mockCompanyStorage) Save(ctx context.Context, profile *domain.CompanyProfile) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, profile)
	}
	return nil
}

// mockOpportunityStorage is an in-memory OpportunityStorage
type mockOpportunityStorage struct {
	saveFunc         func(ctx context.Context, opp *domain.Opportunity) error
	getFunc          func(ctx context.Context, id string) (*domain.Opportunity, error)
	listFunc         func(ctx context.Context, status string) ([]domain.Opportunity, error)
	updateStatusFunc func(ctx context.Context, id string, status string) error
}

func (m *mockOpportunityStorage) Save(ctx context.Context, opp *domain.Opportunity) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, opp)
	}
	return nil
}

func (m *mockOpportunityStorage) Get(ctx context.Context, id string) (*domain.Opportunity, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Opportunity{ID: id}, nil
}

func (m *mockOpportunityStorage) List(ctx context.Context, status string) ([]domain.Opportunity, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, status)
	}
	return []domain.Opportunity{}, nil
}

func (m *mockOpportunityStorage) UpdateStatus(ctx context.Context, id string, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

// mockPrefetcher records prefetch calls
type mockPrefetcher struct {
	mu   sync.Mutex
	urls [][]string
}

func (m *mockPrefetcher) PrefetchEnrichment(ctx context.Context, urls []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, urls)
}

func (m *mockPrefetcher) calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.urls
}

// mockFeedService is a mock implementation of the feeds service
type mockFeedService struct {
	fetchAllFunc func(ctx context.Context, feedURLs []string) map[string][]domain.SearchResult
}

func (m *mockFeedService) FetchAllFeeds(ctx context.Context, feedURLs []string) map[string][]domain.SearchResult {
	if m.fetchAllFunc != nil {
		return m.fetchAllFunc(ctx, feedURLs)
	}
	return map[string][]domain.SearchResult{}
}

// mockEnrichmentService is a mock implementation of the enrichment service
type mockEnrichmentService struct {
	enrichBatchFunc func(ctx context.Context, urls []string) map[string]*interfaces.EnrichmentResult
}

func (m *mockEnrichmentService) EnrichOpportunity(ctx context.Context, url string) (*interfaces.EnrichmentResult, error) {
	return &interfaces.EnrichmentResult{}, nil
}

func (m *mockEnrichmentService) EnrichOpportunityBatch(ctx context.Context, urls []string) map[string]*interfaces.EnrichmentResult {
	if m.enrichBatchFunc != nil {
		return m.enrichBatchFunc(ctx, urls)
	}
	return map[string]*interfaces.EnrichmentResult{}
}

// mockHTTPClient is a mock implementation of the HTTP client
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200}, nil
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return m.Get(ctx, url)
}

// mockResponse is a mock HTTP response
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(m.body)))
}

func (m *mockResponse) Header(key string) string { return "" }

package feeds

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"opportunity-discovery-api/core/domain"
	"opportunity-discovery-api/core/interfaces"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>County Procurement Notices</title>
    <link>https://purchasing.county.example.us</link>
    <item>
      <title>Road Resurfacing RFP 24-101</title>
      <link>https://purchasing.county.example.us/solicitation/24-101</link>
      <description>Sealed bids due April 12</description>
      <pubDate>Mon, 01 Apr 2024 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Janitorial Services RFQ 24-102</title>
      <link>https://purchasing.county.example.us/solicitation/24-102</link>
      <description>Quotes due April 20</description>
    </item>
  </channel>
</rss>`

func TestNewService(t *testing.T) {
	service := NewService(interfaces.Dependencies{})

	if service == nil {
		t.Error("NewService returned nil")
	}
}

func TestFetchFeedOpportunities_EmptyURL(t *testing.T) {
	service := NewService(interfaces.Dependencies{})

	_, err := service.FetchFeedOpportunities(context.Background(), "")

	if err == nil {
		t.Error("FetchFeedOpportunities should return error for empty URL")
	}
}

func TestFetchFeedOpportunities_InvalidURL(t *testing.T) {
	service := NewService(interfaces.Dependencies{})

	_, err := service.FetchFeedOpportunities(context.Background(), "not-a-url")

	if err == nil {
		t.Error("FetchFeedOpportunities should return error for invalid URL")
	}
}

func TestFetchFeedOpportunities_ParsesItemsInOrder(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: sampleFeed}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client})

	results, err := service.FetchFeedOpportunities(context.Background(), "https://purchasing.county.example.us/feed.xml")
	if err != nil {
		t.Fatalf("FetchFeedOpportunities returned error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Title != "Road Resurfacing RFP 24-101" {
		t.Errorf("first title = %q", results[0].Title)
	}
	if results[0].Rank != 1 || results[1].Rank != 2 {
		t.Error("ranks should follow feed item order")
	}
	if results[0].Domain != "purchasing.county.example.us" {
		t.Errorf("domain = %q", results[0].Domain)
	}
	if results[0].PublishedDate == "" {
		t.Error("published date should pass through from the feed")
	}
}

func TestParseFeedContent_CleansDescriptionsAndDates(t *testing.T) {
	const htmlFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>City Bids</title>
    <link>https://bids.city.example.gov</link>
    <item>
      <title>HVAC Maintenance Contract</title>
      <link>https://bids.city.example.gov/rfp/88</link>
      <description>&lt;p&gt;Bids due &lt;b&gt;May 1&lt;/b&gt;&amp;nbsp;at noon&lt;/p&gt;</description>
      <pubDate>Mon, 01 Apr 2024 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

	results, err := parseFeedContent([]byte(htmlFeed))
	if err != nil {
		t.Fatalf("parseFeedContent returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Description != "Bids due May 1 at noon" {
		t.Errorf("description = %q, want HTML stripped", results[0].Description)
	}
	if results[0].PublishedDate != "2024-04-01T09:00:00Z" {
		t.Errorf("published date = %q, want RFC 3339", results[0].PublishedDate)
	}
}

func TestFetchFeedOpportunities_ChecksCacheFirst(t *testing.T) {
	cached := []domain.SearchResult{{Title: "Cached Notice", URL: "https://a.example.gov/solicitation/1", Rank: 1}}
	cachedJSON, _ := json.Marshal(cached)
	httpCalled := false

	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return cachedJSON, nil
		},
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			httpCalled = true
			return nil, errors.New("should not be called")
		},
	}
	service := NewService(interfaces.Dependencies{Cache: cache, HTTPClient: client})

	results, err := service.FetchFeedOpportunities(context.Background(), "https://a.example.gov/feed.xml")
	if err != nil {
		t.Fatalf("FetchFeedOpportunities returned error: %v", err)
	}

	if len(results) != 1 || results[0].Title != "Cached Notice" {
		t.Error("cached results should be returned")
	}
	if httpCalled {
		t.Error("HTTP client should not be called on cache hit")
	}
}

func TestFetchFeedOpportunities_CachesResults(t *testing.T) {
	var capturedTTL time.Duration
	cacheCalled := false

	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, nil // cache miss
		},
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			cacheCalled = true
			capturedTTL = ttl
			return nil
		},
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: sampleFeed}, nil
		},
	}
	service := NewService(interfaces.Dependencies{Cache: cache, HTTPClient: client})

	_, err := service.FetchFeedOpportunities(context.Background(), "https://a.example.gov/feed.xml")
	if err != nil {
		t.Fatalf("FetchFeedOpportunities returned error: %v", err)
	}

	if !cacheCalled {
		t.Error("parsed feed should be cached")
	}
	if capturedTTL != feedCacheTTL {
		t.Errorf("cache TTL = %v, want %v", capturedTTL, feedCacheTTL)
	}
}

func TestFetchFeedOpportunities_Non200Status(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404, body: "not found"}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client})

	_, err := service.FetchFeedOpportunities(context.Background(), "https://a.example.gov/feed.xml")

	if err == nil {
		t.Error("non-200 feed response should be an error")
	}
}

func TestFetchAllFeeds_SkipsFailedFeeds(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if url == "https://bad.example.gov/feed.xml" {
				return nil, errors.New("connection refused")
			}
			return &mockResponse{statusCode: 200, body: sampleFeed}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client})

	results := service.FetchAllFeeds(context.Background(), []string{
		"https://good.example.gov/feed.xml",
		"https://bad.example.gov/feed.xml",
	})

	if len(results) != 1 {
		t.Fatalf("got %d feeds, want 1 surviving feed", len(results))
	}
	if len(results["https://good.example.gov/feed.xml"]) != 2 {
		t.Error("surviving feed should carry its parsed items")
	}
}

// ABOUTME: Feeds service ingests agency procurement RSS/Atom feeds
// ABOUTME: Converts published listings into the same result shape the search pipeline uses

package feeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"opportunity-discovery-api/core/domain"
	"opportunity-discovery-api/core/interfaces"
	htmlutil "opportunity-discovery-api/pkg/utils/html"
	timeutil "opportunity-discovery-api/pkg/utils/time"
)

// feedCacheTTL bounds how long a parsed agency feed is reused. Procurement
// portals typically publish daily; thirty minutes keeps the admin view fresh
// without hammering small agency servers.
const feedCacheTTL = 30 * time.Minute

// Service fetches and parses agency procurement feeds
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new feeds service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps: deps,
	}
}

// FetchFeedOpportunities fetches one procurement feed and converts its items
// into search results. Rank is the 1-based item position in the feed, so the
// scorer's rank decay mirrors the agency's own ordering.
func (s *Service) FetchFeedOpportunities(ctx context.Context, feedURL string) ([]domain.SearchResult, error) {
	if feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid feed URL format")
	}

	// Check cache first
	cacheKey := "feed:opportunities:" + feedURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var results []domain.SearchResult
			if err := json.Unmarshal(data, &results); err == nil {
				return results, nil
			}
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, errors.New("feed returned non-200 status code")
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	results, err := parseFeedContent(bodyBytes)
	if err != nil {
		return nil, err
	}

	// Cache the parsed results (ignore cache errors)
	if s.deps.Cache != nil && len(results) > 0 {
		if data, err := json.Marshal(results); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, feedCacheTTL)
		}
	}

	return results, nil
}

// FetchAllFeeds fetches multiple feeds concurrently and returns results
// grouped per feed URL. Failed feeds are logged and skipped so one dead
// agency portal cannot empty the whole batch.
func (s *Service) FetchAllFeeds(ctx context.Context, feedURLs []string) map[string][]domain.SearchResult {
	results := make(map[string][]domain.SearchResult)
	var mu sync.Mutex
	var wg sync.WaitGroup

	// Limit concurrency
	semaphore := make(chan struct{}, 5)

	for _, feedURL := range feedURLs {
		wg.Add(1)
		go func(feedURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			feedResults, err := s.FetchFeedOpportunities(ctx, feedURL)
			if err != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Warn("Failed to fetch procurement feed", map[string]interface{}{
						"feed_url": feedURL,
						"error":    err.Error(),
					})
				}
				return
			}

			mu.Lock()
			results[feedURL] = feedResults
			mu.Unlock()
		}(feedURL)
	}

	wg.Wait()
	return results
}

// parseFeedContent parses feed bytes into search results
func parseFeedContent(content []byte) ([]domain.SearchResult, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(parsedFeed.Items))
	for i, item := range parsedFeed.Items {
		results = append(results, domain.SearchResult{
			Title:         item.Title,
			URL:           item.Link,
			Description:   htmlutil.StripHTML(item.Description),
			Domain:        domainFromLink(item.Link),
			PublishedDate: normalizePublished(item),
			Rank:          i + 1,
		})
	}

	return results, nil
}

// normalizePublished converts the item's publication date to RFC 3339 so
// feed-sourced results carry the same date shape as provider hits.
// Agency portals emit every date format imaginable; an unparseable date
// is passed through untouched rather than dropped.
func normalizePublished(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	}
	if parsed := timeutil.ParseFlexibleTime(item.Published); !parsed.IsZero() {
		return parsed.UTC().Format(time.RFC3339)
	}
	return item.Published
}

// domainFromLink derives the host from an item link, empty when unparseable
func domainFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// ABOUTME: Enrichment service extracts review metadata from opportunity pages
// ABOUTME: Uses colly to scrape Open Graph tags and notice identifiers for the admin detail view

package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"opportunity-discovery-api/core/interfaces"
)

const (
	enrichmentUserAgent = "OpportunityDiscoveryAPI/1.0"
	enrichmentCacheTTL  = 24 * time.Hour
	maxPageBodySize     = 5 * 1024 * 1024 // 5MB limit
)

// noticeIDPattern matches "Notice ID: ..." style labels on procurement pages.
var noticeIDPattern = regexp.MustCompile(`(?i)notice\s*id\s*:?\s*([A-Za-z0-9-]{4,})`)

// solicitationPattern matches solicitation number labels.
var solicitationPattern = regexp.MustCompile(`(?i)solicitation\s*(?:number|no\.?|#)\s*:?\s*([A-Za-z0-9()./-]{4,})`)

// EnrichmentService extracts metadata from opportunity pages
type EnrichmentService struct {
	deps interfaces.Dependencies
}

// NewEnrichmentService creates a new enrichment service
func NewEnrichmentService(deps interfaces.Dependencies) *EnrichmentService {
	return &EnrichmentService{
		deps: deps,
	}
}

// EnrichOpportunity extracts metadata from a single opportunity URL
func (s *EnrichmentService) EnrichOpportunity(ctx context.Context, targetURL string) (*interfaces.EnrichmentResult, error) {
	// Check cache first
	if s.deps.Cache != nil {
		cacheKey := "enrichment:" + targetURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result interfaces.EnrichmentResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result := s.extractFromURL(targetURL)

	// Cache the result
	if s.deps.Cache != nil && result != nil {
		cacheKey := "enrichment:" + targetURL
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, enrichmentCacheTTL)
		}
	}

	return result, nil
}

// EnrichOpportunityBatch extracts metadata for multiple URLs concurrently
func (s *EnrichmentService) EnrichOpportunityBatch(ctx context.Context, urls []string) map[string]*interfaces.EnrichmentResult {
	results := make(map[string]*interfaces.EnrichmentResult)
	var mu sync.Mutex
	var wg sync.WaitGroup

	// Limit concurrency
	semaphore := make(chan struct{}, 10)

	for _, u := range urls {
		wg.Add(1)
		go func(targetURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if result, err := s.EnrichOpportunity(ctx, targetURL); err == nil && result != nil {
				mu.Lock()
				results[targetURL] = result
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return results
}

// extractFromURL performs the actual page scrape
func (s *EnrichmentService) extractFromURL(targetURL string) *interfaces.EnrichmentResult {
	if targetURL == "" || targetURL == "http://" || targetURL == "about:blank" {
		return nil
	}

	c := colly.NewCollector(
		colly.UserAgent(enrichmentUserAgent),
		colly.MaxBodySize(maxPageBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(10 * time.Second)

	result := &interfaces.EnrichmentResult{}

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		property := e.Attr("property")
		name := e.Attr("name")
		content := e.Attr("content")
		if content == "" {
			return
		}

		switch property {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:image":
			if result.Thumbnail == "" {
				result.Thumbnail = content
			}
		}

		if name == "description" && result.Description == "" {
			result.Description = content
		}
		if name == "twitter:image" && result.Thumbnail == "" {
			result.Thumbnail = content
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if result.Title == "" {
			result.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		noticeID, solicitation := extractIdentifiers(e.DOM)
		if result.NoticeID == "" {
			result.NoticeID = noticeID
		}
		if result.SolicitationNumber == "" {
			result.SolicitationNumber = solicitation
		}
	})

	c.OnResponse(func(r *colly.Response) {
		result.Domain = r.Request.URL.Hostname()
	})

	if err := c.Visit(targetURL); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Enrichment fetch failed", map[string]interface{}{
				"url":   targetURL,
				"error": err.Error(),
			})
		}
		return nil
	}
	c.Wait()

	return result
}

// extractIdentifiers scans the page body for notice and solicitation
// identifiers. Procurement portals render these as labeled definition pairs
// or inline "Notice ID: X" text.
func extractIdentifiers(sel *goquery.Selection) (noticeID, solicitation string) {
	text := sel.Text()

	if m := noticeIDPattern.FindStringSubmatch(text); len(m) == 2 {
		noticeID = m[1]
	}
	if m := solicitationPattern.FindStringSubmatch(text); len(m) == 2 {
		solicitation = m[1]
	}

	// Definition lists take precedence over loose inline matches.
	sel.Find("dt").EachWithBreak(func(i int, dt *goquery.Selection) bool {
		label := strings.ToLower(strings.TrimSpace(dt.Text()))
		value := strings.TrimSpace(dt.Next().Text())
		if value == "" {
			return true
		}
		switch {
		case strings.Contains(label, "notice id"):
			noticeID = value
		case strings.Contains(label, "solicitation"):
			solicitation = value
		}
		return !(noticeID != "" && solicitation != "")
	})

	return noticeID, solicitation
}

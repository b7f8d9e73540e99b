// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Pulls procurement listings from agency RSS/Atom feeds

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"opportunity-discovery-api/core/domain"
)

// FeedService defines the methods needed from the feeds service
type FeedService interface {
	FetchAllFeeds(ctx context.Context, feedURLs []string) map[string][]domain.SearchResult
}

// FeedHandler handles feed-sourced opportunity requests
type FeedHandler struct {
	feedService FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterRoutes registers feed routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "feedOpportunities",
		Method:      http.MethodPost,
		Path:        "/api/admin/feed-opportunities",
		Summary:     "Fetch opportunities from procurement feeds",
		Description: "Fetches the given RSS/Atom feeds concurrently; feeds that fail are skipped",
		Tags:        []string{"Feeds"},
	}, h.FeedOpportunities)
}

// FeedOpportunitiesInput defines the input for the feed operation
type FeedOpportunitiesInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"Feed URLs to fetch"`
	}
}

// FeedOpportunitiesOutput defines the output for the feed operation
type FeedOpportunitiesOutput struct {
	Body struct {
		Feeds map[string][]domain.SearchResult `json:"feeds" doc:"Listings per feed URL; failed feeds are absent"`
	}
}

// FeedOpportunities handles POST /api/admin/feed-opportunities
func (h *FeedHandler) FeedOpportunities(ctx context.Context, input *FeedOpportunitiesInput) (*FeedOpportunitiesOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No feed URLs provided")
	}

	feeds := h.feedService.FetchAllFeeds(ctx, input.Body.URLs)

	output := &FeedOpportunitiesOutput{}
	output.Body.Feeds = feeds
	return output, nil
}

// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"
)

// EnrichmentResult contains metadata extracted from an opportunity page
type EnrichmentResult struct {
	Title              string
	Description        string
	Thumbnail          string // Primary image URL, if the page exposes one
	Domain             string
	NoticeID           string
	SolicitationNumber string
}

// EnrichmentService extracts review metadata from opportunity pages
type EnrichmentService interface {
	EnrichOpportunity(ctx context.Context, url string) (*EnrichmentResult, error)
	EnrichOpportunityBatch(ctx context.Context, urls []string) map[string]*EnrichmentResult
}

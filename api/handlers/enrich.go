// ABOUTME: Enrichment handlers for the Huma API
// ABOUTME: Scrapes listing pages for titles, identifiers and thumbnails on demand

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"opportunity-discovery-api/core/interfaces"
)

// EnrichHandler handles on-demand enrichment requests
type EnrichHandler struct {
	enrichmentService interfaces.EnrichmentService
}

// NewEnrichHandler creates a new enrichment handler
func NewEnrichHandler(enrichmentService interfaces.EnrichmentService) *EnrichHandler {
	return &EnrichHandler{enrichmentService: enrichmentService}
}

// RegisterRoutes registers enrichment routes
func (h *EnrichHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "enrichOpportunities",
		Method:      http.MethodPost,
		Path:        "/api/admin/enrich",
		Summary:     "Enrich opportunity listings",
		Description: "Scrapes each listing page for metadata and procurement identifiers; pages that fail yield null entries",
		Tags:        []string{"Enrichment"},
	}, h.EnrichOpportunities)
}

// EnrichInput defines the input for the enrichment operation
type EnrichInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"Listing URLs to enrich"`
	}
}

// EnrichOutput defines the output for the enrichment operation
type EnrichOutput struct {
	Body struct {
		Results map[string]*interfaces.EnrichmentResult `json:"results" doc:"Enrichment result per URL, null on failure"`
	}
}

// EnrichOpportunities handles POST /api/admin/enrich
func (h *EnrichHandler) EnrichOpportunities(ctx context.Context, input *EnrichInput) (*EnrichOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := h.enrichmentService.EnrichOpportunityBatch(ctx, input.Body.URLs)

	output := &EnrichOutput{}
	output.Body.Results = results
	return output, nil
}

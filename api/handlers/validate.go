// ABOUTME: Validation handler for checking if listing URLs are still reachable
// ABOUTME: Used before approving opportunities whose source pages may have expired

package handlers

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"opportunity-discovery-api/core/interfaces"
)

// ValidateHandler handles listing URL validation
type ValidateHandler struct {
	httpClient interfaces.HTTPClient
}

// NewValidateHandler creates a new validation handler
func NewValidateHandler(httpClient interfaces.HTTPClient) *ValidateHandler {
	return &ValidateHandler{httpClient: httpClient}
}

// RegisterRoutes registers validation routes
func (h *ValidateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validateURLs",
		Method:      http.MethodPost,
		Path:        "/api/admin/validate-urls",
		Summary:     "Check whether listing URLs are reachable",
		Description: "Solicitation pages expire; this checks each URL concurrently before an admin approves it",
		Tags:        []string{"Validation"},
	}, h.ValidateURLs)
}

// ValidateInput defines the input for URL validation
type ValidateInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"Listing URLs to check"`
	}
}

// URLValidationResult represents the validation outcome for one URL
type URLValidationResult struct {
	URL    string `json:"url" doc:"The URL that was checked"`
	Status string `json:"status" doc:"'valid' or 'invalid'"`
}

// ValidateOutput defines the output for URL validation
type ValidateOutput struct {
	Body struct {
		Results []URLValidationResult `json:"results" doc:"One entry per input URL, same order"`
	}
}

// ValidateURLs handles POST /api/admin/validate-urls
func (h *ValidateHandler) ValidateURLs(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	var wg sync.WaitGroup
	results := make([]URLValidationResult, len(input.Body.URLs))

	for i, urlStr := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, targetURL string) {
			defer wg.Done()

			status := "invalid"
			if h.isReachable(ctx, targetURL) {
				status = "valid"
			}
			results[idx] = URLValidationResult{URL: targetURL, Status: status}
		}(i, urlStr)
	}

	wg.Wait()

	output := &ValidateOutput{}
	output.Body.Results = results
	return output, nil
}

// isReachable checks that a URL parses, uses HTTP(S) and answers with a
// non-error status.
func (h *ValidateHandler) isReachable(ctx context.Context, urlStr string) bool {
	u, err := url.Parse(urlStr)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := h.httpClient.Get(ctx, urlStr)
	if err != nil {
		return false
	}
	defer resp.Body().Close()

	statusCode := resp.StatusCode()
	return statusCode >= 200 && statusCode < 400
}

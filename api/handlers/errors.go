// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"opportunity-discovery-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsConfiguration(err) {
		// Deployment problem, not the caller's; nothing to retry until
		// the configuration is fixed.
		return huma.Error503ServiceUnavailable("Service is not configured for this operation")
	}

	if upErr, ok := errors.AsUpstream(err); ok {
		switch {
		case upErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by search provider")
		case upErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Search provider error", err)
		default:
			return huma.Error502BadGateway("Unexpected search provider response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

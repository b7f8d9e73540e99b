// Package core contains the business logic for the Opportunity Discovery API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (CompanyProfile, SearchResult, Opportunity, etc.)
// - discovery: Query building, search, classification, and scoring of opportunities
// - feeds: Procurement RSS/Atom feed ingestion
// - services: Page enrichment via scraping
// - workers: Background enrichment worker pool
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "opportunity-discovery-api/core/discovery"
//	    "opportunity-discovery-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	discoveryService := discovery.NewService(deps, discovery.Config{
//	    APIKey: apiKey,
//	})
//
//	// Search for opportunities
//	resp, err := discoveryService.SearchOpportunities(ctx, query, discovery.DefaultSearchOptions())
//
package core

// Package api provides the HTTP API layer for the opportunity discovery
// service. It uses the Huma framework for automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - middleware/: HTTP middleware for cross-cutting concerns
//
// Admin routes live under /api/admin and are guarded by a bearer token;
// the public surface is the read-only opportunity listing.
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type UpdateStatusInput struct {
//	    ID   string `path:"id"`
//	    Body struct {
//	        Status string `json:"status" enum:"pending,approved,rejected"`
//	    }
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
// - Admin bearer token authentication
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    AdminToken: adminToken,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPI(cfg)
//
//	discoveryHandler := handlers.NewDiscoveryHandler(searchService, companies, prefetcher)
//	discoveryHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "company_id is required",
//	    "instance": "/api/admin/search-opportunities"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api

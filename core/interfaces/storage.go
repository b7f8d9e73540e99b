// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for the opaque datastore behind the review flow

package interfaces

import (
	"context"

	"opportunity-discovery-api/core/domain"
)

// CompanyStorage defines the interface for company profile persistence
type CompanyStorage interface {
	// Get retrieves a company profile by ID
	Get(ctx context.Context, id string) (*domain.CompanyProfile, error)

	// Save persists a company profile
	Save(ctx context.Context, profile *domain.CompanyProfile) error
}

// OpportunityStorage defines the interface for opportunity persistence
type OpportunityStorage interface {
	// Save persists an opportunity
	Save(ctx context.Context, opp *domain.Opportunity) error

	// Get retrieves an opportunity by ID
	Get(ctx context.Context, id string) (*domain.Opportunity, error)

	// List returns opportunities, newest first, optionally filtered by status
	List(ctx context.Context, status string) ([]domain.Opportunity, error)

	// UpdateStatus transitions an opportunity between review states
	UpdateStatus(ctx context.Context, id string, status string) error
}

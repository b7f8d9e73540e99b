// ABOUTME: Opportunity domain model for admin-approved procurement listings
// ABOUTME: Represents the persisted form of a scored discovery result

package domain

import "time"

// Opportunity statuses as stored by the review flow
const (
	OpportunityStatusPending  = "pending"
	OpportunityStatusApproved = "approved"
	OpportunityStatusRejected = "rejected"
)

// Opportunity is a procurement listing persisted after admin review.
// Ownership of a ScoredResult passes to the review flow, which decides
// what to persist; this is that persisted record.
type Opportunity struct {
	// ID is the storage identifier
	ID string `json:"id"`

	// CompanyID links the opportunity to the company it was discovered for
	CompanyID string `json:"company_id,omitempty"`

	// Title is the listing title
	Title string `json:"title"`

	// URL is the listing URL
	URL string `json:"url"`

	// Description is the snippet or summary shown to the customer
	Description string `json:"description,omitempty"`

	// Domain is the listing's host
	Domain string `json:"domain,omitempty"`

	// Score is the relevance score the result carried at review time
	Score int `json:"score"`

	// Status is one of the OpportunityStatus constants
	Status string `json:"status"`

	// CreatedAt is when the record was persisted
	CreatedAt time.Time `json:"created_at"`
}

// ABOUTME: Opportunity review handlers for the Huma API
// ABOUTME: Admin endpoints persist and transition opportunities; listing is public

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"opportunity-discovery-api/core/domain"
	"opportunity-discovery-api/core/interfaces"
)

// OpportunityHandler handles opportunity persistence and review
type OpportunityHandler struct {
	opportunities interfaces.OpportunityStorage
	companies     interfaces.CompanyStorage
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(opportunities interfaces.OpportunityStorage, companies interfaces.CompanyStorage) *OpportunityHandler {
	return &OpportunityHandler{
		opportunities: opportunities,
		companies:     companies,
	}
}

// RegisterRoutes registers opportunity routes
func (h *OpportunityHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "saveOpportunity",
		Method:        http.MethodPost,
		Path:          "/api/admin/opportunities",
		Summary:       "Persist a discovered opportunity",
		Tags:          []string{"Opportunities"},
		DefaultStatus: http.StatusCreated,
	}, h.SaveOpportunity)

	huma.Register(api, huma.Operation{
		OperationID: "updateOpportunityStatus",
		Method:      http.MethodPut,
		Path:        "/api/admin/opportunities/{id}/status",
		Summary:     "Approve or reject an opportunity",
		Tags:        []string{"Opportunities"},
	}, h.UpdateStatus)

	huma.Register(api, huma.Operation{
		OperationID: "listOpportunities",
		Method:      http.MethodGet,
		Path:        "/api/opportunities",
		Summary:     "List reviewed opportunities",
		Tags:        []string{"Opportunities"},
	}, h.ListOpportunities)

	huma.Register(api, huma.Operation{
		OperationID: "saveCompany",
		Method:      http.MethodPost,
		Path:        "/api/admin/companies",
		Summary:     "Create or update a company profile",
		Tags:        []string{"Companies"},
	}, h.SaveCompany)
}

// SaveOpportunityInput defines the input for persisting an opportunity
type SaveOpportunityInput struct {
	Body struct {
		CompanyID   string `json:"company_id,omitempty" doc:"Company the opportunity was discovered for"`
		Title       string `json:"title" doc:"Listing title"`
		URL         string `json:"url" doc:"Listing URL"`
		Description string `json:"description,omitempty" doc:"Snippet or summary"`
		Domain      string `json:"domain,omitempty" doc:"Listing host"`
		Score       int    `json:"score,omitempty" doc:"Relevance score at review time"`
	}
}

// SaveOpportunityOutput returns the persisted record
type SaveOpportunityOutput struct {
	Body domain.Opportunity
}

// SaveOpportunity handles POST /api/admin/opportunities
func (h *OpportunityHandler) SaveOpportunity(ctx context.Context, input *SaveOpportunityInput) (*SaveOpportunityOutput, error) {
	if input.Body.URL == "" {
		return nil, huma.Error400BadRequest("url is required")
	}

	opp := &domain.Opportunity{
		ID:          uuid.New().String(),
		CompanyID:   input.Body.CompanyID,
		Title:       input.Body.Title,
		URL:         input.Body.URL,
		Description: input.Body.Description,
		Domain:      input.Body.Domain,
		Score:       input.Body.Score,
		Status:      domain.OpportunityStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.opportunities.Save(ctx, opp); err != nil {
		return nil, toHumaError(err)
	}

	return &SaveOpportunityOutput{Body: *opp}, nil
}

// UpdateStatusInput defines the input for a status transition
type UpdateStatusInput struct {
	ID   string `path:"id" doc:"Opportunity ID"`
	Body struct {
		Status string `json:"status" enum:"pending,approved,rejected" doc:"New review status"`
	}
}

// UpdateStatusOutput returns the updated record
type UpdateStatusOutput struct {
	Body domain.Opportunity
}

// UpdateStatus handles PUT /api/admin/opportunities/{id}/status
func (h *OpportunityHandler) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	if err := h.opportunities.UpdateStatus(ctx, input.ID, input.Body.Status); err != nil {
		return nil, toHumaError(err)
	}

	opp, err := h.opportunities.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &UpdateStatusOutput{Body: *opp}, nil
}

// ListOpportunitiesInput defines the query parameters for listing
type ListOpportunitiesInput struct {
	Status string `query:"status" enum:"pending,approved,rejected" doc:"Filter by review status" required:"false"`
}

// ListOpportunitiesOutput returns the matching records
type ListOpportunitiesOutput struct {
	Body struct {
		Opportunities []domain.Opportunity `json:"opportunities" doc:"Matching opportunities, newest first"`
		Total         int                  `json:"total" doc:"Number of opportunities returned"`
	}
}

// ListOpportunities handles GET /api/opportunities
func (h *OpportunityHandler) ListOpportunities(ctx context.Context, input *ListOpportunitiesInput) (*ListOpportunitiesOutput, error) {
	opportunities, err := h.opportunities.List(ctx, input.Status)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListOpportunitiesOutput{}
	output.Body.Opportunities = opportunities
	output.Body.Total = len(opportunities)
	return output, nil
}

// SaveCompanyInput defines the input for saving a company profile
type SaveCompanyInput struct {
	Body domain.CompanyProfile
}

// SaveCompanyOutput returns the persisted profile
type SaveCompanyOutput struct {
	Body domain.CompanyProfile
}

// SaveCompany handles POST /api/admin/companies
func (h *OpportunityHandler) SaveCompany(ctx context.Context, input *SaveCompanyInput) (*SaveCompanyOutput, error) {
	if input.Body.ID == "" {
		input.Body.ID = uuid.New().String()
	}

	if err := h.companies.Save(ctx, &input.Body); err != nil {
		return nil, toHumaError(err)
	}

	return &SaveCompanyOutput{Body: input.Body}, nil
}

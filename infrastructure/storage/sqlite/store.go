// ABOUTME: SQLite-backed persistence for company profiles and reviewed opportunities
// ABOUTME: Single-file database shared by both stores; schema created on open

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"opportunity-discovery-api/core/domain"
	coreerrors "opportunity-discovery-api/core/errors"
)

// Store is a single SQLite file holding company profiles and reviewed
// opportunities. Companies() and Opportunities() expose the two storage
// interfaces over the shared connection.
type Store struct {
	db *sql.DB
}

// CompanyStore implements the CompanyStorage interface.
type CompanyStore struct {
	db *sql.DB
}

// OpportunityStore implements the OpportunityStorage interface.
type OpportunityStore struct {
	db *sql.DB
}

// NewStore opens (or creates) the database file and ensures the schema.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "opportunities.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS companies (
			id TEXT PRIMARY KEY,
			profile TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS opportunities (
			id TEXT PRIMARY KEY,
			company_id TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			domain TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_opportunities_status ON opportunities(status);
		CREATE INDEX IF NOT EXISTS idx_opportunities_created ON opportunities(created_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Companies returns the company profile storage view.
func (s *Store) Companies() *CompanyStore {
	return &CompanyStore{db: s.db}
}

// Opportunities returns the opportunity storage view.
func (s *Store) Opportunities() *OpportunityStore {
	return &OpportunityStore{db: s.db}
}

// Get retrieves a company profile by ID.
func (c *CompanyStore) Get(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	var raw string
	err := c.db.QueryRowContext(ctx, "SELECT profile FROM companies WHERE id = ?", id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "company", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	var profile domain.CompanyProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode company profile: %w", err)
	}
	profile.ID = id

	return &profile, nil
}

// Save persists a company profile, replacing any existing record.
func (c *CompanyStore) Save(ctx context.Context, profile *domain.CompanyProfile) error {
	if profile == nil {
		return &coreerrors.ValidationError{Field: "profile", Message: "cannot be nil"}
	}
	if profile.ID == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode company profile: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO companies (id, profile) VALUES (?, ?)",
		profile.ID, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}

	return nil
}

// Save persists a reviewed opportunity.
func (o *OpportunityStore) Save(ctx context.Context, opp *domain.Opportunity) error {
	if opp == nil {
		return &coreerrors.ValidationError{Field: "opportunity", Message: "cannot be nil"}
	}
	if opp.ID == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if opp.URL == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "cannot be empty"}
	}

	status := opp.Status
	if status == "" {
		status = domain.OpportunityStatusPending
	}

	createdAt := opp.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := o.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO opportunities
			(id, company_id, title, url, description, domain, score, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		opp.ID, opp.CompanyID, opp.Title, opp.URL, opp.Description,
		opp.Domain, opp.Score, status, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save opportunity: %w", err)
	}

	return nil
}

// Get retrieves an opportunity by ID.
func (o *OpportunityStore) Get(ctx context.Context, id string) (*domain.Opportunity, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	row := o.db.QueryRowContext(ctx, `
		SELECT id, company_id, title, url, description, domain, score, status, created_at
		FROM opportunities WHERE id = ?`, id)

	opp, err := scanOpportunity(row)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "opportunity", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity: %w", err)
	}

	return opp, nil
}

// List returns opportunities newest first. An empty status returns all
// of them.
func (o *OpportunityStore) List(ctx context.Context, status string) ([]domain.Opportunity, error) {
	query := `
		SELECT id, company_id, title, url, description, domain, score, status, created_at
		FROM opportunities`
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := o.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	opportunities := []domain.Opportunity{}
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opportunities = append(opportunities, *opp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read opportunities: %w", err)
	}

	return opportunities, nil
}

// UpdateStatus transitions an opportunity between review states.
func (o *OpportunityStore) UpdateStatus(ctx context.Context, id string, status string) error {
	if id == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if !validStatus(status) {
		return &coreerrors.ValidationError{Field: "status", Message: "must be pending, approved or rejected"}
	}

	result, err := o.db.ExecContext(ctx,
		"UPDATE opportunities SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update opportunity status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return &coreerrors.NotFoundError{Resource: "opportunity", ID: id}
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func validStatus(status string) bool {
	switch status {
	case domain.OpportunityStatusPending,
		domain.OpportunityStatusApproved,
		domain.OpportunityStatusRejected:
		return true
	}
	return false
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOpportunity(row rowScanner) (*domain.Opportunity, error) {
	var opp domain.Opportunity
	var createdAt int64

	err := row.Scan(&opp.ID, &opp.CompanyID, &opp.Title, &opp.URL,
		&opp.Description, &opp.Domain, &opp.Score, &opp.Status, &createdAt)
	if err != nil {
		return nil, err
	}

	opp.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &opp, nil
}

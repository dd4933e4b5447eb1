package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, first_name, last_name, email, country_of_citizenship,
			linkedin, resume_url, visa_interest, message, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.CountryOfCitizenship,
		lead.LinkedIn,
		lead.ResumeURL,
		pq.Array(lead.VisaInterest),
		lead.Message,
		string(lead.Status),
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicateLead
		}
		log.Printf("lead insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := selectLeadColumns + ` WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

// FindAll returns every lead in creation order. The leads table carries a
// BIGSERIAL seq column filled on insert; ordering on it is exact even when
// created_at values collide.
func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := selectLeadColumns + leadInsertionOrder

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// UpdateStatus is a single UPDATE so concurrent writers on the same row are
// serialized by the database.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus, updatedAt time.Time) (*entity.Lead, error) {
	query := `
		UPDATE leads SET status = $2, updated_at = $3 WHERE id = $1
		RETURNING id, first_name, last_name, email, country_of_citizenship,
			linkedin, resume_url, visa_interest, message, status,
			created_at, updated_at
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, string(status), updatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

const leadInsertionOrder = ` ORDER BY seq`

const selectLeadColumns = `
	SELECT id, first_name, last_name, email, country_of_citizenship,
		linkedin, resume_url, visa_interest, message, status,
		created_at, updated_at
	FROM leads`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var status string
	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.CountryOfCitizenship,
		&lead.LinkedIn,
		&lead.ResumeURL,
		pq.Array(&lead.VisaInterest),
		&lead.Message,
		&status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.Status = entity.LeadStatus(status)
	return &lead, nil
}

package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/invoicing/repository/profiles"
	"encore.app/invoicing/repository/submissions"
)

// Repository combines all domain-specific queriers.
type Repository struct {
	Submissions submissions.Querier
	Profiles    profiles.Querier
}

// NewRepository creates a new Repository backed by the given pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Submissions: submissions.New(db),
		Profiles:    profiles.New(db),
	}
}

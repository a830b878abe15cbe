package profiles

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

const getProfile = `
SELECT id, name, email, address_line1, address_line2, city, region,
       postal_code, country, bank_name, bank_account_name,
       bank_account_number, bank_routing_number, hourly_rate_cents,
       overtime_rate_cents, created_at, updated_at
FROM contractor_profiles
WHERE id = $1
`

func (q *Queries) GetProfile(ctx context.Context, id pgtype.UUID) (ContractorProfile, error) {
	row := q.db.QueryRow(ctx, getProfile, id)
	var p ContractorProfile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.AddressLine1,
		&p.AddressLine2,
		&p.City,
		&p.Region,
		&p.PostalCode,
		&p.Country,
		&p.BankName,
		&p.BankAccountName,
		&p.BankAccountNumber,
		&p.BankRoutingNumber,
		&p.HourlyRateCents,
		&p.OvertimeRateCents,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

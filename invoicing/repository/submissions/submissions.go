package submissions

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const submissionColumns = `id, contractor_id, status, period_start, period_end,
	regular_hours, overtime_hours, regular_rate_cents, overtime_rate_cents,
	total_amount_cents, invoice_status, invoice_number, invoice_path,
	invoice_generated_at, invoice_error, created_at, updated_at`

const getSubmission = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE id = $1
`

func (q *Queries) GetSubmission(ctx context.Context, id int64) (Submission, error) {
	row := q.db.QueryRow(ctx, getSubmission, id)
	var s Submission
	err := scanSubmission(row, &s)
	return s, err
}

const claimInvoiceGeneration = `
UPDATE submissions
SET invoice_status = 'generating', updated_at = now()
WHERE id = $1
  AND (invoice_status = ANY($2::text[])
       OR (invoice_status = 'generating' AND updated_at < now() - make_interval(secs => $3)))
`

func (q *Queries) ClaimInvoiceGeneration(ctx context.Context, arg ClaimInvoiceGenerationParams) (int64, error) {
	tag, err := q.db.Exec(ctx, claimInvoiceGeneration, arg.ID, arg.FromStatuses, arg.StaleAfterSeconds)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const forceClaimInvoiceGeneration = `
UPDATE submissions
SET invoice_status = 'generating', updated_at = now()
WHERE id = $1
  AND (invoice_status <> 'generating'
       OR updated_at < now() - make_interval(secs => $2))
`

func (q *Queries) ForceClaimInvoiceGeneration(ctx context.Context, arg ForceClaimInvoiceGenerationParams) (int64, error) {
	tag, err := q.db.Exec(ctx, forceClaimInvoiceGeneration, arg.ID, arg.StaleAfterSeconds)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markInvoiceGenerated = `
UPDATE submissions
SET invoice_status = 'generated',
    invoice_number = $2,
    invoice_path = $3,
    invoice_generated_at = $4,
    invoice_error = NULL,
    updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkInvoiceGenerated(ctx context.Context, arg MarkInvoiceGeneratedParams) error {
	_, err := q.db.Exec(ctx, markInvoiceGenerated, arg.ID, arg.InvoiceNumber, arg.InvoicePath, arg.GeneratedAt)
	return err
}

const markInvoiceFailed = `
UPDATE submissions
SET invoice_status = 'failed',
    invoice_error = $2,
    updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkInvoiceFailed(ctx context.Context, arg MarkInvoiceFailedParams) error {
	_, err := q.db.Exec(ctx, markInvoiceFailed, arg.ID, arg.InvoiceError)
	return err
}

const countInvoiceNumbersByPrefix = `
SELECT count(*)
FROM submissions
WHERE invoice_number LIKE $1 || '%'
`

func (q *Queries) CountInvoiceNumbersByPrefix(ctx context.Context, prefix string) (int64, error) {
	row := q.db.QueryRow(ctx, countInvoiceNumbersByPrefix, prefix)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const invoiceNumberExists = `
SELECT EXISTS (SELECT 1 FROM submissions WHERE invoice_number = $1)
`

func (q *Queries) InvoiceNumberExists(ctx context.Context, number string) (bool, error) {
	row := q.db.QueryRow(ctx, invoiceNumberExists, number)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listApprovedWithoutInvoice = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE status = 'approved'
  AND (invoice_status IN ('pending', 'failed')
       OR (invoice_status = 'generating' AND updated_at < now() - make_interval(secs => $2)))
ORDER BY id
LIMIT $1
`

func (q *Queries) ListApprovedWithoutInvoice(ctx context.Context, arg ListApprovedWithoutInvoiceParams) ([]Submission, error) {
	rows, err := q.db.Query(ctx, listApprovedWithoutInvoice, arg.Limit, arg.StaleAfterSeconds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Submission
	for rows.Next() {
		var s Submission
		if err := scanSubmission(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func scanSubmission(row pgx.Row, s *Submission) error {
	return row.Scan(
		&s.ID,
		&s.ContractorID,
		&s.Status,
		&s.PeriodStart,
		&s.PeriodEnd,
		&s.RegularHours,
		&s.OvertimeHours,
		&s.RegularRateCents,
		&s.OvertimeRateCents,
		&s.TotalAmountCents,
		&s.InvoiceStatus,
		&s.InvoiceNumber,
		&s.InvoicePath,
		&s.InvoiceGeneratedAt,
		&s.InvoiceError,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

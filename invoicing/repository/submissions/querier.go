package submissions

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	GetSubmission(ctx context.Context, id int64) (Submission, error)

	// ClaimInvoiceGeneration atomically transitions invoice_status to
	// generating when the current status is one of FromStatuses, or when a
	// previous generating claim has gone stale. Returns the number of rows
	// updated; 1 means the caller won the claim.
	ClaimInvoiceGeneration(ctx context.Context, arg ClaimInvoiceGenerationParams) (int64, error)

	// ForceClaimInvoiceGeneration claims regardless of current status,
	// except over a live generating claim younger than StaleAfterSeconds.
	ForceClaimInvoiceGeneration(ctx context.Context, arg ForceClaimInvoiceGenerationParams) (int64, error)

	MarkInvoiceGenerated(ctx context.Context, arg MarkInvoiceGeneratedParams) error
	MarkInvoiceFailed(ctx context.Context, arg MarkInvoiceFailedParams) error

	CountInvoiceNumbersByPrefix(ctx context.Context, prefix string) (int64, error)
	InvoiceNumberExists(ctx context.Context, number string) (bool, error)

	// ListApprovedWithoutInvoice returns approved submissions still needing
	// an invoice, including rows whose generating claim has gone stale.
	ListApprovedWithoutInvoice(ctx context.Context, arg ListApprovedWithoutInvoiceParams) ([]Submission, error)
}

type ClaimInvoiceGenerationParams struct {
	ID                int64
	FromStatuses      []string
	StaleAfterSeconds float64
}

type ForceClaimInvoiceGenerationParams struct {
	ID                int64
	StaleAfterSeconds float64
}

type MarkInvoiceGeneratedParams struct {
	ID            int64
	InvoiceNumber string
	InvoicePath   string
	GeneratedAt   pgtype.Timestamptz
}

type MarkInvoiceFailedParams struct {
	ID           int64
	InvoiceError string
}

type ListApprovedWithoutInvoiceParams struct {
	Limit             int32
	StaleAfterSeconds float64
}

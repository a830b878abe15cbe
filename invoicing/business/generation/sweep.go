package generation

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/submissions"
)

// GenerateForSubmission builds the invoice for one submission during the
// proactive sweep. Unlike GetOrCreate it never waits on a lost claim: a
// concurrent on-demand build produces the same artifact, so the sweep just
// moves on.
func (b *business) GenerateForSubmission(ctx context.Context, submissionID int64) error {
	sub, err := b.getSubmission(ctx, submissionID)
	if err != nil {
		return err
	}

	if sub.InvoiceStatus == model.InvoiceStatusGenerated && sub.InvoicePath != nil {
		return nil
	}

	claimed, err := b.claim(ctx, submissionID)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	_, _, err = b.build(ctx, sub)
	return err
}

// ListPendingInvoices returns approved submissions that still need an
// invoice, oldest first, bounded by limit. Rows stuck in generating past
// the stale window count as pending again, so an abandoned claim does not
// hide a submission from the sweep.
func (b *business) ListPendingInvoices(ctx context.Context, limit int32) ([]int64, error) {
	rows, err := b.submissionRepo.ListApprovedWithoutInvoice(ctx, submissions.ListApprovedWithoutInvoiceParams{
		Limit:             limit,
		StaleAfterSeconds: b.cfg.ClaimStaleAfter.Seconds(),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list submissions awaiting invoices"}
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

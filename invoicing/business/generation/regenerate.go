package generation

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/submissions"
)

// Regenerate rebuilds the invoice regardless of current status. Contractor
// details may have changed since the original build; the artifact is
// rewritten at the same deterministic key so nothing is orphaned.
func (b *business) Regenerate(ctx context.Context, submissionID int64, caller uuid.UUID) (*model.InvoiceLink, error) {
	sub, err := b.getOwnedSubmission(ctx, submissionID, caller)
	if err != nil {
		return nil, err
	}

	rows, err := b.submissionRepo.ForceClaimInvoiceGeneration(ctx, submissions.ForceClaimInvoiceGenerationParams{
		ID:                submissionID,
		StaleAfterSeconds: b.cfg.ClaimStaleAfter.Seconds(),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to claim invoice generation"}
	}
	if rows == 0 {
		// A live build already holds the claim; regenerating on top of it
		// would duplicate work for an artifact about to be replaced anyway.
		return nil, &errs.Error{Code: errs.Aborted, Message: "invoice generation already in progress"}
	}

	rlog.Info("regenerating invoice", "submission_id", submissionID, "previous_status", sub.InvoiceStatus)
	return b.buildAndLink(ctx, sub)
}

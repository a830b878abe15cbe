package generation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

// GetOrCreate returns a link to the submission's invoice, building it at
// most once no matter how many callers race here. The loop covers all
// outcomes of one pass: a cache hit returns immediately, a won claim runs
// the pipeline, and a lost claim waits for the winner and re-checks.
func (b *business) GetOrCreate(ctx context.Context, submissionID int64, caller uuid.UUID) (*model.InvoiceLink, error) {
	deadline := b.claimDeadline()

	for {
		sub, err := b.getOwnedSubmission(ctx, submissionID, caller)
		if err != nil {
			return nil, err
		}

		if sub.InvoiceStatus == model.InvoiceStatusGenerated && sub.InvoicePath != nil {
			// Already built; issue a fresh link without touching the
			// pipeline.
			return b.link(ctx, sub.ID, derefString(sub.InvoiceNumber), *sub.InvoicePath)
		}

		claimed, err := b.claim(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		if claimed {
			return b.buildAndLink(ctx, sub)
		}

		// Another run holds the claim. Wait for it to finish rather than
		// duplicating its work.
		if time.Now().After(deadline) {
			rlog.Info("invoice build still in progress after poll timeout", "submission_id", submissionID)
			return nil, &errs.Error{Code: errs.Aborted, Message: "invoice generation already in progress"}
		}
		select {
		case <-ctx.Done():
			return nil, &errs.Error{Code: errs.DeadlineExceeded, Message: "request cancelled while awaiting invoice generation"}
		case <-time.After(b.cfg.ClaimPollInterval):
		}
	}
}

// claim performs the conditional status transition to generating. Only the
// request whose update affects a row wins; everyone else must not run the
// pipeline.
func (b *business) claim(ctx context.Context, submissionID int64) (bool, error) {
	rows, err := b.submissionRepo.ClaimInvoiceGeneration(ctx, claimParams(submissionID, b.cfg.ClaimStaleAfter))
	if err != nil {
		return false, &errs.Error{Code: errs.Internal, Message: "failed to claim invoice generation"}
	}
	return rows == 1, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/artifact"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/submissions"
)

func claimParams(submissionID int64, staleAfter time.Duration) submissions.ClaimInvoiceGenerationParams {
	return submissions.ClaimInvoiceGenerationParams{
		ID:                submissionID,
		FromStatuses:      claimableStatuses,
		StaleAfterSeconds: staleAfter.Seconds(),
	}
}

// buildAndLink runs the full pipeline for a claimed submission and issues a
// retrieval link for the fresh artifact.
func (b *business) buildAndLink(ctx context.Context, sub *model.Submission) (*model.InvoiceLink, error) {
	number, path, err := b.build(ctx, sub)
	if err != nil {
		return nil, err
	}
	return b.link(ctx, sub.ID, number, path)
}

// build runs assemble → render → upload under the generation timeout and
// persists the outcome. The caller must already hold the generating claim.
func (b *business) build(ctx context.Context, sub *model.Submission) (number, path string, err error) {
	buildCtx, cancel := context.WithTimeout(ctx, b.cfg.GenerateTimeout)
	defer cancel()

	dbProfile, err := b.profileRepo.GetProfile(buildCtx, pgtype.UUID{Bytes: sub.ContractorID, Valid: true})
	if err != nil {
		return "", "", b.failBuild(ctx, sub.ID, "contractor profile unavailable", err)
	}
	profile := convertDBProfileToModel(dbProfile)

	doc, err := b.assembler.Assemble(buildCtx, sub, profile)
	if err != nil {
		return "", "", b.failBuild(ctx, sub.ID, "invoice assembly failed", err)
	}

	pdf, err := b.renderer.Render(doc)
	if err != nil {
		return "", "", b.failBuild(ctx, sub.ID, "invoice rendering failed", err)
	}

	key := artifact.ObjectKey(sub.ContractorID, sub.ID, doc.Number)
	if err := b.artifacts.Upload(buildCtx, key, pdf); err != nil {
		return "", "", b.failBuild(ctx, sub.ID, "invoice upload failed", err)
	}

	// The artifact exists now; a transient metadata write failure must not
	// undo that. Log it and let a later read find the artifact by path. A
	// unique violation is different: the allocated number slipped past the
	// existence check and collided with a concurrent allocation, so the
	// artifact carries a number that belongs to someone else. That build
	// cannot be handed out; mark it failed and let the next attempt
	// allocate a fresh number.
	markErr := b.submissionRepo.MarkInvoiceGenerated(context.WithoutCancel(ctx), submissions.MarkInvoiceGeneratedParams{
		ID:            sub.ID,
		InvoiceNumber: doc.Number,
		InvoicePath:   key,
		GeneratedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	if markErr != nil {
		var pgErr *pgconn.PgError
		if errors.As(markErr, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", "", b.failBuild(ctx, sub.ID, "invoice number conflict", markErr)
		}
		rlog.Error("invoice metadata update failed after successful upload",
			"submission_id", sub.ID, "invoice_number", doc.Number, "path", key, "error", markErr)
	} else {
		rlog.Info("invoice generated", "submission_id", sub.ID, "invoice_number", doc.Number, "path", key)
	}

	return doc.Number, key, nil
}

// failBuild records a failed attempt on the submission and returns the
// error surfaced to the caller. The stored message keeps the underlying
// cause for operators; the surfaced message stays short.
func (b *business) failBuild(ctx context.Context, submissionID int64, stage string, cause error) error {
	rlog.Error("invoice generation failed", "submission_id", submissionID, "stage", stage, "error", cause)

	markErr := b.submissionRepo.MarkInvoiceFailed(context.WithoutCancel(ctx), submissions.MarkInvoiceFailedParams{
		ID:           submissionID,
		InvoiceError: fmt.Sprintf("%s: %v", stage, cause),
	})
	if markErr != nil {
		rlog.Error("failed to record invoice failure", "submission_id", submissionID, "error", markErr)
	}

	return &errs.Error{Code: errs.Internal, Message: stage}
}

// link issues a signed URL for the artifact. When signing is unavailable
// the caller is pointed at the service's direct-download fallback instead
// of failing the whole request.
func (b *business) link(ctx context.Context, submissionID int64, invoiceNumber, path string) (*model.InvoiceLink, error) {
	url, err := b.artifacts.SignedURL(ctx, path, b.cfg.SignedURLTTL)
	if err != nil {
		rlog.Warn("signed URL unavailable, falling back to direct download",
			"submission_id", submissionID, "error", err)
		url = fmt.Sprintf("/v1/submissions/%d/invoice/document", submissionID)
	}

	return &model.InvoiceLink{
		URL:           url,
		ExpiresIn:     int64(b.cfg.SignedURLTTL.Seconds()),
		InvoiceNumber: invoiceNumber,
	}, nil
}

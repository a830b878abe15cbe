package generation

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
)

// DownloadArtifact streams the stored invoice back through the service,
// the fallback retrieval path when URL signing is down.
func (b *business) DownloadArtifact(ctx context.Context, submissionID int64, caller uuid.UUID) ([]byte, string, error) {
	sub, err := b.getOwnedSubmission(ctx, submissionID, caller)
	if err != nil {
		return nil, "", err
	}

	if sub.InvoicePath == nil {
		return nil, "", &errs.Error{Code: errs.NotFound, Message: "invoice not generated"}
	}

	pdf, err := b.artifacts.Download(ctx, *sub.InvoicePath)
	if err != nil {
		return nil, "", err
	}

	return pdf, derefString(sub.InvoiceNumber), nil
}

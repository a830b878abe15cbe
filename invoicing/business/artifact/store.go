// Package artifact persists rendered invoices in object storage and issues
// time-limited retrieval URLs.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/objects"

	"github.com/google/uuid"
)

var invoiceBucket = objects.NewBucket("invoices", objects.BucketConfig{})

type Store interface {
	// Upload writes the artifact at key, overwriting any previous bytes.
	Upload(ctx context.Context, key string, pdf []byte) error

	// SignedURL issues a pre-authorized download link valid for ttl.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Download streams the artifact back directly, the fallback path when
	// URL signing is unavailable.
	Download(ctx context.Context, key string) ([]byte, error)
}

type store struct {
	bucket *objects.Bucket
}

func NewStore() Store {
	return &store{bucket: invoiceBucket}
}

// ObjectKey derives the deterministic storage key for a submission's
// invoice. Regeneration writes to the same key, so stale artifacts are
// overwritten rather than orphaned.
func ObjectKey(contractorID uuid.UUID, submissionID int64, invoiceNumber string) string {
	return fmt.Sprintf("invoices/%s/%d/%s.pdf", contractorID, submissionID, invoiceNumber)
}

func (s *store) Upload(ctx context.Context, key string, pdf []byte) error {
	writer := s.bucket.Upload(ctx, key, objects.WithUploadAttrs(objects.UploadAttrs{
		ContentType: "application/pdf",
	}))
	if _, err := writer.Write(pdf); err != nil {
		writer.Abort(err)
		return &errs.Error{Code: errs.Internal, Message: "failed to upload invoice artifact"}
	}
	if err := writer.Close(); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to upload invoice artifact"}
	}
	return nil
}

func (s *store) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedDownloadURL(ctx, key, objects.WithTTL(ttl))
	if err != nil {
		rlog.Error("failed to sign invoice download URL", "error", err, "key", key)
		return "", &errs.Error{Code: errs.Unavailable, Message: "storage unavailable"}
	}
	return url.URL, nil
}

func (s *store) Download(ctx context.Context, key string) ([]byte, error) {
	reader := s.bucket.Download(ctx, key)
	defer reader.Close()

	pdf, err := io.ReadAll(reader)
	if err != nil {
		if errors.Is(err, objects.ErrObjectNotFound) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice artifact not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to download invoice artifact"}
	}
	return pdf, nil
}

// Package sequence allocates invoice numbers. Numbers are scoped to a
// calendar month and formatted {prefix}-{YYYYMM}-{NNNNNN}; uniqueness is
// enforced against previously persisted numbers with a bounded
// retry-with-offset policy.
package sequence

import (
	"context"
	"time"

	"encore.app/invoicing/config"
	"encore.app/invoicing/repository/submissions"
)

// scopeLayout is the numbering window. One scheme per deployment: changing
// this mid-stream restarts sequences in the new window.
const scopeLayout = "200601"

type Allocator interface {
	Allocate(ctx context.Context) (string, error)
}

type allocator struct {
	submissionRepo submissions.Querier
	cfg            config.Config
	now            func() time.Time
}

func NewAllocator(submissionRepo submissions.Querier, cfg config.Config) Allocator {
	return &allocator{
		submissionRepo: submissionRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

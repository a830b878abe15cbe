package sequence

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// Allocate issues the next invoice number for the current numbering window.
//
// Allocation is read-then-write without a database-level atomic increment,
// so concurrent allocators can compute the same candidate. Each attempt k
// offsets the candidate sequence by k and re-checks for an existing number;
// the first free candidate wins. When every attempt collides the allocator
// falls back to a timestamp-derived number that is unique but not visually
// sequential.
func (a *allocator) Allocate(ctx context.Context) (string, error) {
	scope := a.now().Format(scopeLayout)
	prefix := fmt.Sprintf("%s-%s-", a.cfg.NumberPrefix, scope)

	count, err := a.submissionRepo.CountInvoiceNumbersByPrefix(ctx, prefix)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to count issued invoice numbers"}
	}

	for attempt := 0; attempt <= a.cfg.SequenceMaxRetries; attempt++ {
		candidate := fmt.Sprintf("%s%0*d", prefix, a.cfg.SequenceWidth, count+1+int64(attempt))

		exists, err := a.submissionRepo.InvoiceNumberExists(ctx, candidate)
		if err != nil {
			return "", &errs.Error{Code: errs.Internal, Message: "failed to verify invoice number candidate"}
		}
		if !exists {
			return candidate, nil
		}

		rlog.Debug("invoice number candidate taken, retrying with offset",
			"candidate", candidate, "attempt", attempt)
	}

	// Degraded mode: every sequential candidate collided.
	fallback := fmt.Sprintf("%sT%09d", prefix, a.now().UnixNano()%1_000_000_000)
	rlog.Warn("invoice number retries exhausted, issuing timestamp-derived number",
		"prefix", prefix, "number", fallback)
	return fallback, nil
}

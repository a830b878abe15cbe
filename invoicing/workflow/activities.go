package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/invoicing/business/generation"
)

// ActivityDependencies holds the dependencies needed by activities.
type ActivityDependencies struct {
	Generation generation.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities.
func SetActivityDependencies(generationBusiness generation.Business) {
	if generationBusiness == nil {
		activityDeps = nil
		return
	}
	activityDeps = &ActivityDependencies{
		Generation: generationBusiness,
	}
}

// ListPendingInvoicesActivity returns the next batch of submissions that
// still need an invoice.
func ListPendingInvoicesActivity(ctx context.Context, batchSize int32) ([]int64, error) {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.Generation == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	ids, err := activityDeps.Generation.ListPendingInvoices(ctx, batchSize)
	if err != nil {
		logger.Error("Failed to list submissions awaiting invoices", "error", err)
		return nil, err
	}

	logger.Info("Listed submissions awaiting invoices", "count", len(ids))
	return ids, nil
}

// GenerateInvoiceActivity builds the invoice for a single submission.
func GenerateInvoiceActivity(ctx context.Context, submissionID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing invoice generation activity", "submissionID", submissionID)

	if activityDeps == nil || activityDeps.Generation == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.Generation.GenerateForSubmission(ctx, submissionID); err != nil {
		logger.Error("Failed to generate invoice", "submissionID", submissionID, "error", err)
		return err
	}

	logger.Info("Invoice generation activity completed", "submissionID", submissionID)
	return nil
}

// Package workflow runs the proactive invoice generation sweep on
// Temporal. The sweep shares its concurrency primitive with the on-demand
// path: every build goes through the same conditional claim, so a sweep
// racing a user request never double-builds.
package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// maxSweepBatches bounds a single sweep run. Submissions that keep failing
// stay failed and are picked up by the next scheduled sweep instead of
// spinning this one forever.
const maxSweepBatches = 20

// InvoiceSweepParams contains parameters for starting the sweep workflow.
type InvoiceSweepParams struct {
	BatchSize int32 `json:"batch_size"`
}

// InvoiceSweep generates invoices for approved submissions in bounded
// batches until no work remains.
func InvoiceSweep(ctx workflow.Context, params InvoiceSweepParams) error {
	logger := workflow.GetLogger(ctx)
	if params.BatchSize <= 0 {
		params.BatchSize = 50
	}
	logger.Info("Starting invoice sweep", "batchSize", params.BatchSize)

	generated := 0
	failed := 0

	for batch := 0; batch < maxSweepBatches; batch++ {
		var ids []int64
		err := listPending(ctx, params.BatchSize, &ids)
		if err != nil {
			logger.Error("Failed to list submissions awaiting invoices", "error", err)
			return err
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if err := generateInvoice(ctx, id); err != nil {
				// Failures are recorded on the submission; keep sweeping.
				logger.Error("Invoice generation failed during sweep", "submissionID", id, "error", err)
				failed++
				continue
			}
			generated++
		}

		if int32(len(ids)) < params.BatchSize {
			break
		}
		if err := workflow.Sleep(ctx, time.Second); err != nil {
			return err
		}
	}

	logger.Info("Invoice sweep completed", "generated", generated, "failed", failed)
	return nil
}

// listPending executes the ListPendingInvoicesActivity.
func listPending(ctx workflow.Context, batchSize int32, out *[]int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ListPendingInvoicesActivity, batchSize).Get(ctx, out)
}

// generateInvoice executes the GenerateInvoiceActivity for one submission.
func generateInvoice(ctx workflow.Context, submissionID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, GenerateInvoiceActivity, submissionID).Get(ctx, nil)
}

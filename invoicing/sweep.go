package invoicing

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/cron"
	"encore.dev/rlog"

	"encore.app/invoicing/workflow"
)

// Proactive generation: shortly after a period closes, build invoices for
// every approved submission that does not have one yet.
var _ = cron.NewJob("invoice-sweep", cron.JobConfig{
	Title:    "Generate invoices for approved submissions",
	Schedule: "0 2 1 * *",
	Endpoint: (*Service).SweepInvoices,
})

type SweepResponse struct {
	WorkflowID string `json:"workflow_id"`
}

//encore:api private method=POST path=/v1/invoicing/sweep
func (s *Service) SweepInvoices(ctx context.Context) (*SweepResponse, error) {
	// One sweep per numbering window; re-triggering joins the running one.
	workflowID := fmt.Sprintf("invoice-sweep-%s", time.Now().Format("200601"))

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}
	params := workflow.InvoiceSweepParams{BatchSize: int32(s.cfg.SweepBatchSize)}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.InvoiceSweep, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("invoice sweep already running", "workflow_id", workflowID)
			return &SweepResponse{WorkflowID: workflowID}, nil
		}
		rlog.Error("failed to start invoice sweep", "error", err, "workflow_id", workflowID)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start invoice sweep"}
	}

	return &SweepResponse{WorkflowID: workflowID}, nil
}

package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type RegenerateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
}

//encore:api auth path=/v1/submissions/:id/invoice/regenerate method=POST tag:idempotency
func (s *Service) RegenerateInvoice(ctx context.Context, id int, req *RegenerateInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid submission ID"}
	}

	caller, err := callerID()
	if err != nil {
		return nil, err
	}

	link, err := s.generation.Regenerate(ctx, int64(id), caller)
	if err != nil {
		rlog.Error("failed to regenerate invoice", "error", err, "submission_id", id)
		return nil, err
	}

	return &InvoiceResponse{
		URL:           link.URL,
		ExpiresIn:     link.ExpiresIn,
		InvoiceNumber: link.InvoiceNumber,
	}, nil
}

// Validate implements validation for RegenerateInvoiceRequest.
func (r *RegenerateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

package invoicing

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type InvoiceResponse struct {
	URL           string `json:"url"`
	ExpiresIn     int64  `json:"expires_in"`
	InvoiceNumber string `json:"invoice_number"`
}

//encore:api auth path=/v1/submissions/:id/invoice method=GET
func (s *Service) GetInvoice(ctx context.Context, id int) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid submission ID"}
	}

	caller, err := callerID()
	if err != nil {
		return nil, err
	}

	link, err := s.generation.GetOrCreate(ctx, int64(id), caller)
	if err != nil {
		rlog.Error("failed to get or create invoice", "error", err, "submission_id", id)
		return nil, err
	}

	return &InvoiceResponse{
		URL:           link.URL,
		ExpiresIn:     link.ExpiresIn,
		InvoiceNumber: link.InvoiceNumber,
	}, nil
}

// callerID resolves the authenticated contractor identity. Verification is
// the auth handler's job; this only consumes the resolved UID.
func callerID() (uuid.UUID, error) {
	uid, ok := auth.UserID()
	if !ok {
		return uuid.Nil, &errs.Error{Code: errs.Unauthenticated, Message: "authentication required"}
	}
	caller, err := uuid.Parse(string(uid))
	if err != nil {
		return uuid.Nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid caller identity"}
	}
	return caller, nil
}

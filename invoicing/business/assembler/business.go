// Package assembler builds immutable invoice documents from mutable source
// records. The document total always equals the submission's stored total;
// line items are presentation detail and are never summed back into it.
package assembler

import (
	"context"
	"time"

	"encore.app/invoicing/business/sequence"
	"encore.app/invoicing/config"
	"encore.app/invoicing/model"
)

type Business interface {
	Assemble(ctx context.Context, submission *model.Submission, profile *model.ContractorProfile) (*model.InvoiceDocument, error)
}

type business struct {
	sequence sequence.Allocator
	cfg      config.Config
	now      func() time.Time
}

func NewBusiness(sequenceAllocator sequence.Allocator, cfg config.Config) Business {
	return &business{
		sequence: sequenceAllocator,
		cfg:      cfg,
		now:      time.Now,
	}
}

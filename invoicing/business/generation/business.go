// Package generation orchestrates the invoice pipeline: claim the build,
// assemble, render, store, persist, and hand back a retrieval link.
//
// Coordination happens exclusively through the submission's persisted
// invoice_status; the service keeps no cross-request state so it can scale
// horizontally. At most one build is ever in flight per submission,
// enforced by a conditional claim in the repository.
package generation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/business/artifact"
	"encore.app/invoicing/business/assembler"
	"encore.app/invoicing/business/renderer"
	"encore.app/invoicing/config"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/profiles"
	"encore.app/invoicing/repository/submissions"
)

type Business interface {
	// GetOrCreate returns a retrieval link for the submission's invoice,
	// building it first if it does not exist yet. Safe to call from any
	// number of concurrent requests.
	GetOrCreate(ctx context.Context, submissionID int64, caller uuid.UUID) (*model.InvoiceLink, error)

	// Regenerate unconditionally rebuilds the invoice, overwriting the
	// stored artifact at the same deterministic key.
	Regenerate(ctx context.Context, submissionID int64, caller uuid.UUID) (*model.InvoiceLink, error)

	// GenerateForSubmission is the sweep entry point: build if missing,
	// skip quietly when another worker holds the claim.
	GenerateForSubmission(ctx context.Context, submissionID int64) error

	// DownloadArtifact streams the stored invoice bytes, the fallback when
	// URL signing is unavailable. Returns the bytes and invoice number.
	DownloadArtifact(ctx context.Context, submissionID int64, caller uuid.UUID) ([]byte, string, error)

	// ListPendingInvoices returns submissions awaiting proactive
	// generation, bounded by limit.
	ListPendingInvoices(ctx context.Context, limit int32) ([]int64, error)
}

type business struct {
	submissionRepo submissions.Querier
	profileRepo    profiles.Querier
	assembler      assembler.Business
	renderer       renderer.Renderer
	artifacts      artifact.Store
	cfg            config.Config
}

func NewBusiness(
	submissionRepo submissions.Querier,
	profileRepo profiles.Querier,
	assemblerBusiness assembler.Business,
	documentRenderer renderer.Renderer,
	artifactStore artifact.Store,
	cfg config.Config,
) Business {
	return &business{
		submissionRepo: submissionRepo,
		profileRepo:    profileRepo,
		assembler:      assemblerBusiness,
		renderer:       documentRenderer,
		artifacts:      artifactStore,
		cfg:            cfg,
	}
}

func (b *business) getSubmission(ctx context.Context, id int64) (*model.Submission, error) {
	dbSub, err := b.submissionRepo.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "submission not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get submission"}
	}
	return convertDBSubmissionToModel(dbSub), nil
}

func (b *business) getOwnedSubmission(ctx context.Context, id int64, caller uuid.UUID) (*model.Submission, error) {
	sub, err := b.getSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.ContractorID != caller {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "submission does not belong to caller"}
	}
	return sub, nil
}

// convertDBSubmissionToModel converts a database Submission to a domain model Submission.
func convertDBSubmissionToModel(dbSub submissions.Submission) *model.Submission {
	sub := &model.Submission{
		ID:               dbSub.ID,
		ContractorID:     uuid.UUID(dbSub.ContractorID.Bytes),
		Status:           dbSub.Status,
		PeriodStart:      dbSub.PeriodStart.Time,
		PeriodEnd:        dbSub.PeriodEnd.Time,
		RegularHours:     dbSub.RegularHours,
		OvertimeHours:    dbSub.OvertimeHours,
		TotalAmountCents: dbSub.TotalAmountCents,
		InvoiceStatus:    model.InvoiceStatus(dbSub.InvoiceStatus),
		CreatedAt:        dbSub.CreatedAt.Time,
		UpdatedAt:        dbSub.UpdatedAt.Time,
	}

	if dbSub.RegularRateCents.Valid {
		sub.RegularRateCents = &dbSub.RegularRateCents.Int64
	}
	if dbSub.OvertimeRateCents.Valid {
		sub.OvertimeRateCents = &dbSub.OvertimeRateCents.Int64
	}
	if dbSub.InvoiceNumber.Valid {
		sub.InvoiceNumber = &dbSub.InvoiceNumber.String
	}
	if dbSub.InvoicePath.Valid {
		sub.InvoicePath = &dbSub.InvoicePath.String
	}
	if dbSub.InvoiceGeneratedAt.Valid {
		sub.InvoiceGeneratedAt = &dbSub.InvoiceGeneratedAt.Time
	}
	if dbSub.InvoiceError.Valid {
		sub.InvoiceError = &dbSub.InvoiceError.String
	}

	return sub
}

// convertDBProfileToModel converts a database ContractorProfile to a domain model.
func convertDBProfileToModel(dbProfile profiles.ContractorProfile) *model.ContractorProfile {
	profile := &model.ContractorProfile{
		ID:        uuid.UUID(dbProfile.ID.Bytes),
		Name:      dbProfile.Name,
		Email:     dbProfile.Email,
		CreatedAt: dbProfile.CreatedAt.Time,
		UpdatedAt: dbProfile.UpdatedAt.Time,
	}

	if dbProfile.AddressLine1.Valid {
		profile.AddressLine1 = &dbProfile.AddressLine1.String
	}
	if dbProfile.AddressLine2.Valid {
		profile.AddressLine2 = &dbProfile.AddressLine2.String
	}
	if dbProfile.City.Valid {
		profile.City = &dbProfile.City.String
	}
	if dbProfile.Region.Valid {
		profile.Region = &dbProfile.Region.String
	}
	if dbProfile.PostalCode.Valid {
		profile.PostalCode = &dbProfile.PostalCode.String
	}
	if dbProfile.Country.Valid {
		profile.Country = &dbProfile.Country.String
	}
	if dbProfile.BankName.Valid {
		profile.BankName = &dbProfile.BankName.String
	}
	if dbProfile.BankAccountName.Valid {
		profile.BankAccountName = &dbProfile.BankAccountName.String
	}
	if dbProfile.BankAccountNumber.Valid {
		profile.BankAccountNumber = &dbProfile.BankAccountNumber.String
	}
	if dbProfile.BankRoutingNumber.Valid {
		profile.BankRoutingNumber = &dbProfile.BankRoutingNumber.String
	}
	if dbProfile.HourlyRateCents.Valid {
		profile.HourlyRateCents = &dbProfile.HourlyRateCents.Int64
	}
	if dbProfile.OvertimeRateCents.Valid {
		profile.OvertimeRateCents = &dbProfile.OvertimeRateCents.Int64
	}

	return profile
}

// claimableStatuses are the states a normal get-or-create claim may take
// over. A failed build is retryable; generated is only re-entered through
// Regenerate.
var claimableStatuses = []string{
	string(model.InvoiceStatusPending),
	string(model.InvoiceStatusFailed),
}

func (b *business) claimDeadline() time.Time {
	return time.Now().Add(b.cfg.ClaimPollTimeout)
}

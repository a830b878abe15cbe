package assembler

import (
	"context"
	"fmt"
	"math"
	"strings"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// addressPlaceholder stands in for missing address components so the
// rendered layout stays stable.
const addressPlaceholder = "N/A"

// Assemble builds an InvoiceDocument for a submission. Rate resolution
// prefers the snapshot stored on the submission; the contractor's current
// profile rate is a fallback for legacy rows only. This ordering keeps the
// invoice aligned with what the contractor saw at submission time even if
// rates changed afterwards.
func (b *business) Assemble(ctx context.Context, submission *model.Submission, profile *model.ContractorProfile) (*model.InvoiceDocument, error) {
	number, err := b.invoiceNumber(ctx, submission)
	if err != nil {
		return nil, err
	}

	regularRate, err := resolveRegularRate(submission, profile)
	if err != nil {
		return nil, err
	}
	overtimeRate := b.resolveOvertimeRate(submission, profile, regularRate)

	var items []model.InvoiceLineItem
	if submission.RegularHours > 0 {
		items = append(items, model.InvoiceLineItem{
			Description: fmt.Sprintf("Regular hours (%s – %s)",
				submission.PeriodStart.Format("Jan 2, 2006"), submission.PeriodEnd.Format("Jan 2, 2006")),
			Hours:       submission.RegularHours,
			RateCents:   regularRate,
			AmountCents: lineAmountCents(regularRate, submission.RegularHours),
		})
	}
	if submission.OvertimeHours > 0 {
		items = append(items, model.InvoiceLineItem{
			Description: "Overtime hours",
			Hours:       submission.OvertimeHours,
			RateCents:   overtimeRate,
			AmountCents: lineAmountCents(overtimeRate, submission.OvertimeHours),
		})
	}

	issueDate := b.now()
	doc := &model.InvoiceDocument{
		Number:    number,
		IssueDate: issueDate,
		DueDate:   issueDate.AddDate(0, 0, b.cfg.DueDays),
		Currency:  b.cfg.Currency,
		Payer: model.Party{
			Name:    b.cfg.CompanyName,
			Email:   b.cfg.CompanyEmail,
			Address: b.cfg.CompanyAddress,
		},
		Payee: model.Party{
			Name:    profile.Name,
			Email:   profile.Email,
			Address: joinAddress(profile),
		},
		PeriodStart: submission.PeriodStart,
		PeriodEnd:   submission.PeriodEnd,
		LineItems:   items,

		// The stored submission total is authoritative. Never replace it
		// with a sum of the line items above.
		TotalCents: submission.TotalAmountCents,

		Bank:  bankDetails(profile),
		Notes: fmt.Sprintf("Billable hours for the period %s – %s.", submission.PeriodStart.Format("January 2, 2006"), submission.PeriodEnd.Format("January 2, 2006")),
	}

	return doc, nil
}

// invoiceNumber keeps the number already issued to the submission, so a
// rebuild replaces the prior artifact at its storage key instead of issuing
// a parallel invoice. A fresh number is allocated only on first assembly.
func (b *business) invoiceNumber(ctx context.Context, submission *model.Submission) (string, error) {
	if submission.InvoiceNumber != nil && *submission.InvoiceNumber != "" {
		return *submission.InvoiceNumber, nil
	}
	return b.sequence.Allocate(ctx)
}

func resolveRegularRate(submission *model.Submission, profile *model.ContractorProfile) (int64, error) {
	if submission.RegularRateCents != nil {
		return *submission.RegularRateCents, nil
	}
	if profile.HourlyRateCents != nil {
		return *profile.HourlyRateCents, nil
	}
	return 0, &errs.Error{Code: errs.FailedPrecondition, Message: "no hourly rate available for submission"}
}

func (b *business) resolveOvertimeRate(submission *model.Submission, profile *model.ContractorProfile, regularRate int64) int64 {
	if submission.OvertimeRateCents != nil {
		return *submission.OvertimeRateCents
	}
	if profile.OvertimeRateCents != nil {
		return *profile.OvertimeRateCents
	}
	return int64(math.Round(float64(regularRate) * b.cfg.OvertimeMultiplier))
}

// lineAmountCents computes rate × hours in cents with round-half-up
// semantics at the line level.
func lineAmountCents(rateCents int64, hours float64) int64 {
	return int64(math.Floor(float64(rateCents)*hours + 0.5))
}

// joinAddress flattens the profile address into a single display string.
// Missing components are replaced with a placeholder rather than dropped so
// downstream layout does not shift.
func joinAddress(profile *model.ContractorProfile) string {
	part := func(p *string) string {
		if p == nil || strings.TrimSpace(*p) == "" {
			return addressPlaceholder
		}
		return *p
	}

	parts := []string{
		part(profile.AddressLine1),
		part(profile.City),
		part(profile.PostalCode),
		part(profile.Country),
	}
	if profile.AddressLine2 != nil && strings.TrimSpace(*profile.AddressLine2) != "" {
		parts = append([]string{parts[0], *profile.AddressLine2}, parts[1:]...)
	}
	return strings.Join(parts, ", ")
}

func bankDetails(profile *model.ContractorProfile) *model.BankDetails {
	if profile.BankAccountNumber == nil || strings.TrimSpace(*profile.BankAccountNumber) == "" {
		// The renderer prints an explicit "not provided" notice for a nil
		// banking block; the section is never silently dropped.
		return nil
	}

	text := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return &model.BankDetails{
		BankName:      text(profile.BankName),
		AccountName:   text(profile.BankAccountName),
		AccountNumber: *profile.BankAccountNumber,
		RoutingNumber: text(profile.BankRoutingNumber),
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	ID            int64     `json:"id"`
	ContractorID  uuid.UUID `json:"contractor_id"`
	Status        string    `json:"status"`
	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	RegularHours  float64   `json:"regular_hours"`
	OvertimeHours float64   `json:"overtime_hours"`

	// Rate snapshot captured at submission time. Nil on legacy rows, in
	// which case the contractor's current profile rate is used instead.
	RegularRateCents  *int64 `json:"regular_rate_cents,omitempty"`
	OvertimeRateCents *int64 `json:"overtime_rate_cents,omitempty"`

	// TotalAmountCents is authoritative for the invoice total once stored.
	TotalAmountCents int64 `json:"total_amount_cents"`

	InvoiceStatus      InvoiceStatus `json:"invoice_status"`
	InvoiceNumber      *string       `json:"invoice_number,omitempty"`
	InvoicePath        *string       `json:"invoice_path,omitempty"`
	InvoiceGeneratedAt *time.Time    `json:"invoice_generated_at,omitempty"`
	InvoiceError       *string       `json:"invoice_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusPending    InvoiceStatus = "pending"
	InvoiceStatusGenerating InvoiceStatus = "generating"
	InvoiceStatusGenerated  InvoiceStatus = "generated"
	InvoiceStatusFailed     InvoiceStatus = "failed"
)

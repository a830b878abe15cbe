package submissions

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Submission mirrors the submissions table. Timesheet fields are owned by
// the submission CRUD surface elsewhere; this service only reads them and
// writes the invoice_* columns.
type Submission struct {
	ID                 int64
	ContractorID       pgtype.UUID
	Status             string
	PeriodStart        pgtype.Date
	PeriodEnd          pgtype.Date
	RegularHours       float64
	OvertimeHours      float64
	RegularRateCents   pgtype.Int8
	OvertimeRateCents  pgtype.Int8
	TotalAmountCents   int64
	InvoiceStatus      string
	InvoiceNumber      pgtype.Text
	InvoicePath        pgtype.Text
	InvoiceGeneratedAt pgtype.Timestamptz
	InvoiceError       pgtype.Text
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

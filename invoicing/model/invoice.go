package model

import (
	"time"
)

// InvoiceDocument is the immutable value an invoice is rendered from. It is
// built fresh for every generation attempt and discarded once the byte
// stream exists; only the rendered artifact and the denormalized fields on
// the submission survive.
type InvoiceDocument struct {
	Number      string
	IssueDate   time.Time
	DueDate     time.Time
	Currency    string
	Payer       Party // the company being billed
	Payee       Party // the contractor issuing the invoice
	PeriodStart time.Time
	PeriodEnd   time.Time

	// LineItems are printed in insertion order.
	LineItems []InvoiceLineItem

	// TotalCents is carried from the submission's stored total, never
	// recomputed from line items.
	TotalCents int64

	Bank  *BankDetails
	Notes string
}

type Party struct {
	Name    string
	Email   string
	Address string
}

type InvoiceLineItem struct {
	Description string
	Hours       float64
	RateCents   int64
	AmountCents int64
}

type BankDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	RoutingNumber string
}

// InvoiceLink is the retrieval handle returned to callers.
type InvoiceLink struct {
	URL           string `json:"url"`
	ExpiresIn     int64  `json:"expires_in"`
	InvoiceNumber string `json:"invoice_number"`
}

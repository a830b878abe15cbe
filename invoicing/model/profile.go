package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractorProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`

	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	Region       *string `json:"region,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	Country      *string `json:"country,omitempty"`

	BankName          *string `json:"bank_name,omitempty"`
	BankAccountName   *string `json:"bank_account_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankRoutingNumber *string `json:"bank_routing_number,omitempty"`

	// Current rates, used only when a submission has no stored snapshot.
	HourlyRateCents   *int64 `json:"hourly_rate_cents,omitempty"`
	OvertimeRateCents *int64 `json:"overtime_rate_cents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package profiles

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type ContractorProfile struct {
	ID                pgtype.UUID
	Name              string
	Email             string
	AddressLine1      pgtype.Text
	AddressLine2      pgtype.Text
	City              pgtype.Text
	Region            pgtype.Text
	PostalCode        pgtype.Text
	Country           pgtype.Text
	BankName          pgtype.Text
	BankAccountName   pgtype.Text
	BankAccountNumber pgtype.Text
	BankRoutingNumber pgtype.Text
	HourlyRateCents   pgtype.Int8
	OvertimeRateCents pgtype.Int8
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

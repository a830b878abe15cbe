package profiles

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	GetProfile(ctx context.Context, id pgtype.UUID) (ContractorProfile, error)
}

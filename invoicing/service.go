package invoicing

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/invoicing/business/artifact"
	"encore.app/invoicing/business/assembler"
	"encore.app/invoicing/business/generation"
	"encore.app/invoicing/business/renderer"
	"encore.app/invoicing/business/sequence"
	"encore.app/invoicing/config"
	"encore.app/invoicing/repository"
	"encore.app/invoicing/workflow"
)

var invoicingDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

const taskQueue = "invoicing"

//encore:service
type Service struct {
	generation generation.Business
	temporal   client.Client
	cfg        config.Config
}

func initService() (*Service, error) {
	cfg := config.Default()

	pgxdb := sqldb.Driver[*pgxpool.Pool](invoicingDB)
	repo := repository.NewRepository(pgxdb)

	sequenceAllocator := sequence.NewAllocator(repo.Submissions, cfg)
	invoiceAssembler := assembler.NewBusiness(sequenceAllocator, cfg)
	documentRenderer := renderer.New(cfg)
	artifactStore := artifact.NewStore()

	generationBusiness := generation.NewBusiness(
		repo.Submissions,
		repo.Profiles,
		invoiceAssembler,
		documentRenderer,
		artifactStore,
		cfg,
	)

	workflow.SetActivityDependencies(generationBusiness)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		rlog.Error("failed to connect to temporal", "error", err)
		return nil, err
	}

	return &Service{
		generation: generationBusiness,
		temporal:   temporalClient,
		cfg:        cfg,
	}, nil
}

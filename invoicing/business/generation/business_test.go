package generation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/config"
	"encore.app/invoicing/mocks/business/artifact_store"
	"encore.app/invoicing/mocks/business/assembler_business"
	"encore.app/invoicing/mocks/business/renderer_mock"
	"encore.app/invoicing/mocks/repository/profile_repo"
	"encore.app/invoicing/mocks/repository/submission_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/profiles"
	"encore.app/invoicing/repository/submissions"
)

var (
	testContractorID = uuid.MustParse("3d6f0b2a-9c41-4a7e-8f2d-1b5e6c7a8d90")
	otherCallerID    = uuid.MustParse("9a1b2c3d-4e5f-4a6b-8c7d-0e1f2a3b4c5d")
)

const testSubmissionID = int64(501)

type testMocks struct {
	submissionRepo *submission_repo.MockQuerier
	profileRepo    *profile_repo.MockQuerier
	assembler      *assembler_business.MockBusiness
	renderer       *renderer_mock.MockRenderer
	artifacts      *artifact_store.MockStore
}

func newTestBusiness(t *testing.T) (*business, *testMocks) {
	ctrl := gomock.NewController(t)

	m := &testMocks{
		submissionRepo: submission_repo.NewMockQuerier(ctrl),
		profileRepo:    profile_repo.NewMockQuerier(ctrl),
		assembler:      assembler_business.NewMockBusiness(ctrl),
		renderer:       renderer_mock.NewMockRenderer(ctrl),
		artifacts:      artifact_store.NewMockStore(ctrl),
	}

	cfg := config.Default()
	// Keep poll-and-wait paths fast under test.
	cfg.ClaimPollInterval = time.Millisecond
	cfg.ClaimPollTimeout = 25 * time.Millisecond

	b := &business{
		submissionRepo: m.submissionRepo,
		profileRepo:    m.profileRepo,
		assembler:      m.assembler,
		renderer:       m.renderer,
		artifacts:      m.artifacts,
		cfg:            cfg,
	}
	return b, m
}

func dbSubmission(status string) submissions.Submission {
	return submissions.Submission{
		ID:                testSubmissionID,
		ContractorID:      pgtype.UUID{Bytes: testContractorID, Valid: true},
		Status:            "approved",
		PeriodStart:       pgtype.Date{Time: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		PeriodEnd:         pgtype.Date{Time: time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), Valid: true},
		RegularHours:      40,
		OvertimeHours:     10,
		RegularRateCents:  pgtype.Int8{Int64: 2000, Valid: true},
		OvertimeRateCents: pgtype.Int8{Int64: 3000, Valid: true},
		TotalAmountCents:  110000,
		InvoiceStatus:     status,
	}
}

func dbGeneratedSubmission(number, path string) submissions.Submission {
	sub := dbSubmission(string(model.InvoiceStatusGenerated))
	sub.InvoiceNumber = pgtype.Text{String: number, Valid: true}
	sub.InvoicePath = pgtype.Text{String: path, Valid: true}
	sub.InvoiceGeneratedAt = pgtype.Timestamptz{Time: time.Date(2026, time.August, 16, 3, 0, 0, 0, time.UTC), Valid: true}
	return sub
}

func dbProfile() profiles.ContractorProfile {
	return profiles.ContractorProfile{
		ID:              pgtype.UUID{Bytes: testContractorID, Valid: true},
		Name:            "Dana Reyes",
		Email:           "dana@contractors.example",
		HourlyRateCents: pgtype.Int8{Int64: 2000, Valid: true},
	}
}

func testDocument(number string) *model.InvoiceDocument {
	return &model.InvoiceDocument{
		Number:     number,
		Currency:   "USD",
		TotalCents: 110000,
	}
}

// expectBuild wires the happy-path pipeline: profile, assemble, render,
// upload, metadata write.
func expectBuild(m *testMocks, number string) {
	m.profileRepo.EXPECT().
		GetProfile(gomock.Any(), pgtype.UUID{Bytes: testContractorID, Valid: true}).
		Return(dbProfile(), nil)
	m.assembler.EXPECT().
		Assemble(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(testDocument(number), nil)
	m.renderer.EXPECT().
		Render(gomock.Any()).
		Return([]byte("%PDF-1.4 test"), nil)
	m.artifacts.EXPECT().
		Upload(gomock.Any(), gomock.Any(), []byte("%PDF-1.4 test")).
		Return(nil)
	m.submissionRepo.EXPECT().
		MarkInvoiceGenerated(gomock.Any(), gomock.Any()).
		Return(nil)
}

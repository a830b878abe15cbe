package generation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/invoicing/config"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/profiles"
	"encore.app/invoicing/repository/submissions"
)

// fakeSubmissionStore implements submissions.Querier with real conditional
// claim semantics, so the claim race can be exercised with goroutines
// instead of scripted mocks.
type fakeSubmissionStore struct {
	mu  sync.Mutex
	row submissions.Submission
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{row: dbSubmission(string(model.InvoiceStatusPending))}
}

func (f *fakeSubmissionStore) GetSubmission(_ context.Context, id int64) (submissions.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.row, nil
}

func (f *fakeSubmissionStore) ClaimInvoiceGeneration(_ context.Context, params submissions.ClaimInvoiceGenerationParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, status := range params.FromStatuses {
		if f.row.InvoiceStatus == status {
			f.row.InvoiceStatus = string(model.InvoiceStatusGenerating)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeSubmissionStore) ForceClaimInvoiceGeneration(_ context.Context, params submissions.ForceClaimInvoiceGenerationParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.row.InvoiceStatus == string(model.InvoiceStatusGenerating) {
		return 0, nil
	}
	f.row.InvoiceStatus = string(model.InvoiceStatusGenerating)
	return 1, nil
}

func (f *fakeSubmissionStore) MarkInvoiceGenerated(_ context.Context, params submissions.MarkInvoiceGeneratedParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.row.InvoiceStatus = string(model.InvoiceStatusGenerated)
	f.row.InvoiceNumber = pgtype.Text{String: params.InvoiceNumber, Valid: true}
	f.row.InvoicePath = pgtype.Text{String: params.InvoicePath, Valid: true}
	f.row.InvoiceGeneratedAt = params.GeneratedAt
	return nil
}

func (f *fakeSubmissionStore) MarkInvoiceFailed(_ context.Context, params submissions.MarkInvoiceFailedParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.row.InvoiceStatus = string(model.InvoiceStatusFailed)
	f.row.InvoiceError = pgtype.Text{String: params.InvoiceError, Valid: true}
	return nil
}

func (f *fakeSubmissionStore) CountInvoiceNumbersByPrefix(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (f *fakeSubmissionStore) InvoiceNumberExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeSubmissionStore) ListApprovedWithoutInvoice(_ context.Context, _ submissions.ListApprovedWithoutInvoiceParams) ([]submissions.Submission, error) {
	return nil, nil
}

type fakeProfileStore struct{}

func (fakeProfileStore) GetProfile(_ context.Context, _ pgtype.UUID) (profiles.ContractorProfile, error) {
	return dbProfile(), nil
}

type fakeAssembler struct{}

func (fakeAssembler) Assemble(_ context.Context, _ *model.Submission, _ *model.ContractorProfile) (*model.InvoiceDocument, error) {
	return testDocument("INV-202608-000001"), nil
}

type countingRenderer struct {
	renders atomic.Int64
}

func (r *countingRenderer) Render(_ *model.InvoiceDocument) ([]byte, error) {
	r.renders.Add(1)
	time.Sleep(5 * time.Millisecond) // hold the claim long enough for a real race
	return []byte("%PDF-1.4 concurrent"), nil
}

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *memoryStore) Upload(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memoryStore) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/" + key, nil
}

func (s *memoryStore) Download(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[key], nil
}

// Many concurrent GetOrCreate calls must produce exactly one rendered
// artifact, and every caller must come away with a link to it.
func TestGetOrCreateConcurrentCallersRenderOnce(t *testing.T) {
	store := newFakeSubmissionStore()
	rend := &countingRenderer{}
	objects := &memoryStore{objects: map[string][]byte{}}

	cfg := config.Default()
	cfg.ClaimPollInterval = time.Millisecond
	cfg.ClaimPollTimeout = 2 * time.Second

	b := &business{
		submissionRepo: store,
		profileRepo:    fakeProfileStore{},
		assembler:      fakeAssembler{},
		renderer:       rend,
		artifacts:      objects,
		cfg:            cfg,
	}

	const callers = 16
	links := make([]*model.InvoiceLink, callers)
	errors := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			links[i], errors[i] = b.GetOrCreate(context.Background(), testSubmissionID, testContractorID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errors[i], "caller %d", i)
		require.NotNil(t, links[i], "caller %d", i)
		assert.Equal(t, links[0].URL, links[i].URL, "caller %d", i)
		assert.Equal(t, "INV-202608-000001", links[i].InvoiceNumber, "caller %d", i)
	}

	assert.Equal(t, int64(1), rend.renders.Load(), "pipeline must run exactly once")
	assert.Len(t, objects.objects, 1)
}

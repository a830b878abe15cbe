package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

func TestDownloadArtifact(t *testing.T) {
	b, m := newTestBusiness(t)

	m.submissionRepo.EXPECT().
		GetSubmission(gomock.Any(), testSubmissionID).
		Return(dbGeneratedSubmission("INV-202608-000042", "invoices/key.pdf"), nil)
	m.artifacts.EXPECT().
		Download(gomock.Any(), "invoices/key.pdf").
		Return([]byte("%PDF-1.4 stored"), nil)

	pdf, number, err := b.DownloadArtifact(context.Background(), testSubmissionID, testContractorID)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4 stored"), pdf)
	assert.Equal(t, "INV-202608-000042", number)
}

func TestDownloadArtifactNotGenerated(t *testing.T) {
	b, m := newTestBusiness(t)

	m.submissionRepo.EXPECT().
		GetSubmission(gomock.Any(), testSubmissionID).
		Return(dbSubmission(string(model.InvoiceStatusPending)), nil)

	_, _, err := b.DownloadArtifact(context.Background(), testSubmissionID, testContractorID)
	require.Error(t, err)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.NotFound, e.Code)
}

func TestDownloadArtifactOwnershipEnforced(t *testing.T) {
	b, m := newTestBusiness(t)

	m.submissionRepo.EXPECT().
		GetSubmission(gomock.Any(), testSubmissionID).
		Return(dbGeneratedSubmission("INV-202608-000042", "invoices/key.pdf"), nil)

	_, _, err := b.DownloadArtifact(context.Background(), testSubmissionID, otherCallerID)
	require.Error(t, err)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.PermissionDenied, e.Code)
}

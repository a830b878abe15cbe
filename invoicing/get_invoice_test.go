package invoicing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/et"

	"encore.app/invoicing/config"
	"encore.app/invoicing/mocks/business/generation_business"
	"encore.app/invoicing/model"
)

var testContractorID = uuid.MustParse("3d6f0b2a-9c41-4a7e-8f2d-1b5e6c7a8d90")

func newTestService(t *testing.T) (*Service, *generation_business.MockBusiness) {
	ctrl := gomock.NewController(t)

	mockBusiness := generation_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		generation: mockBusiness,
		temporal:   mockTemporal,
		cfg:        config.Default(),
	}
	return service, mockBusiness
}

func authenticateAs(id uuid.UUID) {
	et.OverrideAuthInfo(auth.UID(id.String()), nil)
}

func TestGetInvoice(t *testing.T) {
	testCases := []struct {
		name          string
		submissionID  int
		mockReturn    *model.InvoiceLink
		mockError     error
		expectedError string
		expectCall    bool
	}{
		{
			name:         "successful_invoice_retrieval",
			submissionID: 501,
			mockReturn: &model.InvoiceLink{
				URL:           "https://signed.example/invoices/key.pdf",
				ExpiresIn:     300,
				InvoiceNumber: "INV-202608-000042",
			},
			expectCall: true,
		},
		{
			name:          "invalid_submission_id_zero",
			submissionID:  0,
			expectedError: "invalid submission ID",
		},
		{
			name:          "invalid_submission_id_negative",
			submissionID:  -5,
			expectedError: "invalid submission ID",
		},
		{
			name:          "submission_not_found",
			submissionID:  999,
			mockError:     &errs.Error{Code: errs.NotFound, Message: "submission not found"},
			expectedError: "submission not found",
			expectCall:    true,
		},
		{
			name:          "submission_owned_by_someone_else",
			submissionID:  502,
			mockError:     &errs.Error{Code: errs.PermissionDenied, Message: "submission does not belong to caller"},
			expectedError: "submission does not belong to caller",
			expectCall:    true,
		},
		{
			name:          "generation_in_progress",
			submissionID:  503,
			mockError:     &errs.Error{Code: errs.Aborted, Message: "invoice generation already in progress"},
			expectedError: "invoice generation already in progress",
			expectCall:    true,
		},
		{
			name:         "fallback_download_link",
			submissionID: 504,
			mockReturn: &model.InvoiceLink{
				URL:           "/v1/submissions/504/invoice/document",
				ExpiresIn:     300,
				InvoiceNumber: "INV-202608-000043",
			},
			expectCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockBusiness := newTestService(t)
			authenticateAs(testContractorID)

			if tc.expectCall {
				mockBusiness.EXPECT().
					GetOrCreate(gomock.Any(), int64(tc.submissionID), testContractorID).
					Return(tc.mockReturn, tc.mockError).
					Times(1)
			}

			response, err := service.GetInvoice(context.Background(), tc.submissionID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, response)
			assert.Equal(t, tc.mockReturn.URL, response.URL)
			assert.Equal(t, tc.mockReturn.ExpiresIn, response.ExpiresIn)
			assert.Equal(t, tc.mockReturn.InvoiceNumber, response.InvoiceNumber)
		})
	}
}

func TestGetInvoiceRequiresValidIdentity(t *testing.T) {
	service, _ := newTestService(t)

	// A non-UUID subject cannot be mapped to a contractor.
	et.OverrideAuthInfo(auth.UID("not-a-uuid"), nil)

	response, err := service.GetInvoice(context.Background(), 501)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid caller identity")
	assert.Nil(t, response)
}

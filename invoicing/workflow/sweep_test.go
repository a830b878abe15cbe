package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	genmock "encore.app/invoicing/mocks/business/generation_business"
)

func newSweepEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *genmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockGen := genmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockGen)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ListPendingInvoicesActivity)
	env.RegisterActivity(GenerateInvoiceActivity)
	return env, mockGen
}

func TestInvoiceSweep_GeneratesAllPending(t *testing.T) {
	env, mockGen := newSweepEnv(t)

	mockGen.EXPECT().ListPendingInvoices(gomock.Any(), int32(10)).Return([]int64{501, 502, 503}, nil).Times(1)
	mockGen.EXPECT().GenerateForSubmission(gomock.Any(), int64(501)).Return(nil).Times(1)
	mockGen.EXPECT().GenerateForSubmission(gomock.Any(), int64(502)).Return(nil).Times(1)
	mockGen.EXPECT().GenerateForSubmission(gomock.Any(), int64(503)).Return(nil).Times(1)

	env.ExecuteWorkflow(InvoiceSweep, InvoiceSweepParams{BatchSize: 10})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceSweep_DrainsInBatches(t *testing.T) {
	env, mockGen := newSweepEnv(t)

	// Full first batch forces a second list; the short second batch ends the
	// sweep.
	mockGen.EXPECT().ListPendingInvoices(gomock.Any(), int32(2)).Return([]int64{1, 2}, nil).Times(1)
	mockGen.EXPECT().ListPendingInvoices(gomock.Any(), int32(2)).Return([]int64{3}, nil).Times(1)
	mockGen.EXPECT().GenerateForSubmission(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	env.ExecuteWorkflow(InvoiceSweep, InvoiceSweepParams{BatchSize: 2})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceSweep_NoPendingWork(t *testing.T) {
	env, mockGen := newSweepEnv(t)

	mockGen.EXPECT().ListPendingInvoices(gomock.Any(), int32(50)).Return(nil, nil).Times(1)

	// BatchSize zero falls back to the default of 50.
	env.ExecuteWorkflow(InvoiceSweep, InvoiceSweepParams{})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceSweep_ContinuesPastFailedSubmission(t *testing.T) {
	env, mockGen := newSweepEnv(t)

	buildErr := errors.New("invoice rendering failed")

	mockGen.EXPECT().ListPendingInvoices(gomock.Any(), int32(10)).Return([]int64{601, 602}, nil).Times(1)
	// The retry policy allows three attempts before the sweep gives up on
	// this submission and moves on.
	mockGen.EXPECT().GenerateForSubmission(gomock.Any(), int64(601)).Return(buildErr).Times(3)
	mockGen.EXPECT().GenerateForSubmission(gomock.Any(), int64(602)).Return(nil).Times(1)

	env.ExecuteWorkflow(InvoiceSweep, InvoiceSweepParams{BatchSize: 10})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestActivities_FailurePaths(t *testing.T) {
	testErr := errors.New("boom")

	run := func(name string, expect func(m *genmock.MockBusiness), invoke func(env *testsuite.TestActivityEnvironment) error) {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockGen := genmock.NewMockBusiness(ctrl)
			SetActivityDependencies(mockGen)
			t.Cleanup(func() { SetActivityDependencies(nil) })

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(ListPendingInvoicesActivity)
			env.RegisterActivity(GenerateInvoiceActivity)

			expect(mockGen)
			err := invoke(env)
			if err == nil {
				t.Fatalf("expected error from activity but got nil")
			}
			assert.Contains(t, err.Error(), testErr.Error())
		})
	}

	run("ListPendingInvoicesActivity failure", func(m *genmock.MockBusiness) {
		m.EXPECT().ListPendingInvoices(gomock.Any(), int32(5)).Return(nil, testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(ListPendingInvoicesActivity, int32(5))
		if err != nil {
			return err
		}
		var out interface{}
		return fut.Get(&out)
	})

	run("GenerateInvoiceActivity failure", func(m *genmock.MockBusiness) {
		m.EXPECT().GenerateForSubmission(gomock.Any(), int64(9)).Return(testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(GenerateInvoiceActivity, int64(9))
		if err != nil {
			return err
		}
		var out interface{}
		return fut.Get(&out)
	})
}

func TestActivities_MissingDependencies(t *testing.T) {
	SetActivityDependencies(nil)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(GenerateInvoiceActivity)

	fut, err := env.ExecuteActivity(GenerateInvoiceActivity, int64(1))
	if err == nil {
		var out interface{}
		err = fut.Get(&out)
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")
}

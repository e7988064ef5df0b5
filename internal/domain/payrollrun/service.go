package payrollrun

import "context"

// RunService drives the payroll-run wizard from selection through outcome
// reporting. All state lives in memory for the lifetime of the run.
type RunService interface {
	CreateRun(ctx context.Context, req CreateRunRequest) (RunResponse, error)
	GetRun(ctx context.Context, runID string) (RunResponse, error)
	UpdateSelection(ctx context.Context, runID string, req UpdateSelectionRequest) (RunResponse, error)
	UpdateEmployee(ctx context.Context, runID, employeeID string, req UpdateEmployeeRequest) (WizardEmployeeResponse, error)
	Review(ctx context.Context, runID string) (ReviewResponse, error)
	Generate(ctx context.Context, runID string) (OutcomeReportResponse, error)
	Outcomes(ctx context.Context, runID string) (OutcomeReportResponse, error)
	CancelRun(ctx context.Context, runID string) error
}

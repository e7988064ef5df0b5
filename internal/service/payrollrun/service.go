package payrollrun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/pkg/validator"
)

const dateFormat = "2006-01-02"

type RunServiceImpl struct {
	gateway payrollrun.PayrollGateway
	store   *RunStore
	now     func() time.Time
}

func NewRunService(gateway payrollrun.PayrollGateway, store *RunStore) payrollrun.RunService {
	return &RunServiceImpl{
		gateway: gateway,
		store:   store,
		now:     time.Now,
	}
}

// ========== SELECTOR ==========

// CreateRun loads the roster, resolves each employee's compensation
// structure concurrently, and opens a new wizard run. A failed structure
// lookup leaves the employee visible but ineligible; only a failed roster
// load aborts the whole step.
func (s *RunServiceImpl) CreateRun(ctx context.Context, req payrollrun.CreateRunRequest) (payrollrun.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollrun.RunResponse{}, err
	}

	period := payrollrun.CurrentMonthPeriod(s.now())
	if req.PeriodStart != nil && req.PeriodEnd != nil {
		start, _ := validator.IsValidDate(*req.PeriodStart)
		end, _ := validator.IsValidDate(*req.PeriodEnd)
		period = payrollrun.PayPeriod{Start: start, End: end}
	}

	roster, err := s.gateway.ListEmployees(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("%w: %v", payrollrun.ErrRosterUnavailable, err)
	}

	employees := make([]*payrollrun.WizardEmployee, len(roster))
	g, gctx := errgroup.WithContext(ctx)
	for i, emp := range roster {
		g.Go(func() error {
			wizardEmp := &payrollrun.WizardEmployee{
				EmployeeID:        emp.ID,
				FullName:          emp.FullName,
				AvatarColor:       emp.AvatarColor,
				EarningCategory:   payrollrun.CategoryNone,
				PTOHours:          emp.PTOHours,
				HolidayHours:      emp.HolidayHours,
				SickHours:         emp.SickHours,
				BankName:          emp.BankName,
				BankAccountNumber: emp.BankAccountNumber,
			}

			assignment, err := s.gateway.GetStructureAssignment(gctx, emp.ID)
			if err == nil && assignment != nil {
				base := assignment.BaseAmount
				wizardEmp.HasStructure = true
				wizardEmp.StructureName = assignment.StructureName
				wizardEmp.BaseSalary = &base
				wizardEmp.Selected = true
			}
			// Lookup failures degrade to ineligible so the operator can see
			// why the employee is excluded.

			wizardEmp.Recompute()
			employees[i] = wizardEmp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payrollrun.RunResponse{}, err
	}

	run := &payrollrun.Run{
		ID:        uuid.NewString(),
		Period:    period,
		Employees: employees,
		Status:    payrollrun.RunStatusDraft,
		CreatedAt: s.now(),
	}
	s.store.Put(run)

	return mapRunResponse(run), nil
}

func (s *RunServiceImpl) GetRun(ctx context.Context, runID string) (payrollrun.RunResponse, error) {
	run, ok := s.store.Get(runID)
	if !ok {
		return payrollrun.RunResponse{}, payrollrun.ErrRunNotFound
	}
	return mapRunResponse(run), nil
}

func (s *RunServiceImpl) UpdateSelection(ctx context.Context, runID string, req payrollrun.UpdateSelectionRequest) (payrollrun.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, ok := s.store.Get(runID)
	if !ok {
		return payrollrun.RunResponse{}, payrollrun.ErrRunNotFound
	}
	if run.Status == payrollrun.RunStatusGenerated {
		return payrollrun.RunResponse{}, payrollrun.ErrRunAlreadyGenerated
	}

	selected := make(map[string]bool, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		emp := run.FindEmployee(id)
		if emp == nil {
			return payrollrun.RunResponse{}, fmt.Errorf("%w: %s", payrollrun.ErrEmployeeNotInRun, id)
		}
		if !emp.HasStructure {
			return payrollrun.RunResponse{}, fmt.Errorf("%w: %s", payrollrun.ErrEmployeeNotEligible, id)
		}
		selected[id] = true
	}

	for _, emp := range run.Employees {
		emp.Selected = selected[emp.EmployeeID]
	}

	return mapRunResponse(run), nil
}

// ========== HOURS, EARNINGS & TIME OFF ==========

// UpdateEmployee applies a partial edit. Any change to a formula input
// (worked hours, overtime hours, additional earnings) rederives the total
// and clears a manual override; a total_pay value in the same request is
// applied afterwards and wins until the next input change.
func (s *RunServiceImpl) UpdateEmployee(ctx context.Context, runID, employeeID string, req payrollrun.UpdateEmployeeRequest) (payrollrun.WizardEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollrun.WizardEmployeeResponse{}, err
	}

	run, ok := s.store.Get(runID)
	if !ok {
		return payrollrun.WizardEmployeeResponse{}, payrollrun.ErrRunNotFound
	}
	if run.Status == payrollrun.RunStatusGenerated {
		return payrollrun.WizardEmployeeResponse{}, payrollrun.ErrRunAlreadyGenerated
	}

	emp := run.FindEmployee(employeeID)
	if emp == nil {
		return payrollrun.WizardEmployeeResponse{}, payrollrun.ErrEmployeeNotInRun
	}

	inputChanged := false
	if req.WorkedHours != nil {
		emp.WorkedHours = *req.WorkedHours
		inputChanged = true
	}
	if req.OvertimeHours != nil {
		emp.OvertimeHours = *req.OvertimeHours
		inputChanged = true
	}
	if req.AdditionalEarnings != nil {
		emp.AdditionalEarnings = *req.AdditionalEarnings
		inputChanged = true
	}
	if req.EarningCategory != nil {
		emp.EarningCategory = payrollrun.EarningCategory(*req.EarningCategory)
	}

	// Time-off hours are carried for display only; they never feed the pay
	// formula.
	if req.PTOHours != nil {
		emp.PTOHours = *req.PTOHours
	}
	if req.HolidayHours != nil {
		emp.HolidayHours = *req.HolidayHours
	}
	if req.SickHours != nil {
		emp.SickHours = *req.SickHours
	}

	if req.PaymentMethod != nil {
		emp.PaymentMethod = *req.PaymentMethod
	}
	if req.Note != nil {
		emp.Note = *req.Note
	}

	if inputChanged {
		emp.Recompute()
	}
	if req.TotalPay != nil {
		emp.Override(*req.TotalPay)
	}

	return mapEmployeeResponse(emp), nil
}

// ========== REVIEWER ==========

// Review aggregates the selected employees for operator confirmation. The
// overtime line reports only the incremental 0.5x premium while the grand
// total is the plain sum of per-employee totals, so the grand total does not
// equal the sum of the breakdown lines. That mirrors what operators have
// always been shown; see DESIGN.md before changing it.
func (s *RunServiceImpl) Review(ctx context.Context, runID string) (payrollrun.ReviewResponse, error) {
	run, ok := s.store.Get(runID)
	if !ok {
		return payrollrun.ReviewResponse{}, payrollrun.ErrRunNotFound
	}

	totalNetWages := decimal.Zero
	totalPremium := decimal.Zero
	totalAdditional := decimal.Zero
	var rows []payrollrun.ReviewRowResponse

	for _, emp := range run.SelectedEligible() {
		totalNetWages = totalNetWages.Add(emp.TotalPay.Amount)
		totalPremium = totalPremium.Add(payrollrun.OvertimePremium(emp.BaseSalary, emp.OvertimeHours))
		totalAdditional = totalAdditional.Add(emp.AdditionalEarnings)

		rows = append(rows, payrollrun.ReviewRowResponse{
			EmployeeID:         emp.EmployeeID,
			FullName:           emp.FullName,
			WorkedHours:        emp.WorkedHours,
			OvertimeHours:      emp.OvertimeHours,
			AdditionalEarnings: emp.AdditionalEarnings,
			TotalPay:           emp.TotalPay.Amount,
			PaymentMethod:      emp.PaymentMethod,
			BankName:           emp.BankName,
			BankAccountNumber:  emp.BankAccountNumber,
		})
	}

	return payrollrun.ReviewResponse{
		TotalNetWages:           totalNetWages,
		TotalOvertimePremium:    totalPremium,
		TotalAdditionalEarnings: totalAdditional,
		GrandTotal:              totalNetWages,
		Employees:               rows,
	}, nil
}

// ========== GENERATOR / RECONCILER ==========

// Generate creates one salary slip per selected employee against the ERP
// backend. Attempts run concurrently with per-employee isolation: a conflict
// reconciles to the existing slip, any other failure is recorded and never
// blocks siblings. The run advances only after every attempt has resolved.
func (s *RunServiceImpl) Generate(ctx context.Context, runID string) (payrollrun.OutcomeReportResponse, error) {
	run, ok := s.store.Get(runID)
	if !ok {
		return payrollrun.OutcomeReportResponse{}, payrollrun.ErrRunNotFound
	}
	if run.Status == payrollrun.RunStatusGenerated {
		return payrollrun.OutcomeReportResponse{}, payrollrun.ErrRunAlreadyGenerated
	}

	targets := run.SelectedEligible()
	if len(targets) == 0 {
		return payrollrun.OutcomeReportResponse{}, payrollrun.ErrNoEmployeesSelected
	}

	postingDate := s.now()
	outcomes := make([]payrollrun.Outcome, len(targets))

	// Plain fan-out: outcomes carry per-employee errors, so no goroutine
	// ever returns one. Note errgroup.WithContext is deliberately not used;
	// one employee's failure must not cancel the siblings.
	var g errgroup.Group
	for i, emp := range targets {
		g.Go(func() error {
			outcomes[i] = s.generateOne(ctx, run.Period, postingDate, emp)
			return nil
		})
	}
	_ = g.Wait()

	run.Outcomes = outcomes
	run.Status = payrollrun.RunStatusGenerated

	return buildReport(outcomes), nil
}

// generateOne runs the create-then-maybe-reconcile sequence for a single
// employee.
func (s *RunServiceImpl) generateOne(ctx context.Context, period payrollrun.PayPeriod, postingDate time.Time, emp *payrollrun.WizardEmployee) payrollrun.Outcome {
	outcome := payrollrun.Outcome{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName,
	}

	handle, err := s.gateway.CreateSalarySlip(ctx, buildNewSlip(period, postingDate, emp))
	if err == nil {
		outcome.SlipID = handle.ID
		outcome.Succeeded = true
		return outcome
	}

	if !errors.Is(err, payrollrun.ErrSlipAlreadyExists) {
		outcome.Error = err.Error()
		return outcome
	}

	// Conflict signal: a slip already exists for this employee and period.
	// Reconcile by adopting it instead of failing the employee.
	handles, listErr := s.gateway.ListSalarySlips(ctx, emp.EmployeeID, period)
	if listErr != nil {
		outcome.Error = listErr.Error()
		return outcome
	}
	if len(handles) == 0 {
		outcome.Error = err.Error()
		return outcome
	}

	outcome.SlipID = handles[0].ID
	outcome.Succeeded = true
	outcome.IsExisting = true
	return outcome
}

func buildNewSlip(period payrollrun.PayPeriod, postingDate time.Time, emp *payrollrun.WizardEmployee) payrollrun.NewSlip {
	var earnings []payrollrun.EarningLine
	if emp.OvertimeHours > 0 {
		earnings = append(earnings, payrollrun.EarningLine{
			Label:  payrollrun.OvertimeLineLabel,
			Amount: payrollrun.OvertimePay(emp.BaseSalary, emp.OvertimeHours),
		})
	}
	if emp.AdditionalEarnings.IsPositive() {
		earnings = append(earnings, payrollrun.EarningLine{
			Label:  slipComponentLabel(emp.EarningCategory),
			Amount: emp.AdditionalEarnings,
		})
	}

	return payrollrun.NewSlip{
		EmployeeID:  emp.EmployeeID,
		PostingDate: postingDate,
		Period:      period,
		PaymentDays: payrollrun.PaymentDays(emp.WorkedHours),
		Earnings:    earnings,
	}
}

func slipComponentLabel(category payrollrun.EarningCategory) string {
	switch category {
	case payrollrun.CategoryReimbursement:
		return "Reimbursement"
	case payrollrun.CategoryBonus:
		return "Bonus"
	case payrollrun.CategoryCommission:
		return "Commission"
	case payrollrun.CategoryAllowance:
		return "Allowance"
	default:
		return "Additional Earnings"
	}
}

// ========== REPORTER ==========

func (s *RunServiceImpl) Outcomes(ctx context.Context, runID string) (payrollrun.OutcomeReportResponse, error) {
	run, ok := s.store.Get(runID)
	if !ok {
		return payrollrun.OutcomeReportResponse{}, payrollrun.ErrRunNotFound
	}
	if run.Status != payrollrun.RunStatusGenerated {
		return payrollrun.OutcomeReportResponse{}, payrollrun.ErrRunNotGenerated
	}
	return buildReport(run.Outcomes), nil
}

func (s *RunServiceImpl) CancelRun(ctx context.Context, runID string) error {
	if !s.store.Delete(runID) {
		return payrollrun.ErrRunNotFound
	}
	return nil
}

func buildReport(outcomes []payrollrun.Outcome) payrollrun.OutcomeReportResponse {
	report := payrollrun.OutcomeReportResponse{
		Succeeded: []payrollrun.OutcomeResponse{},
		Failed:    []payrollrun.OutcomeResponse{},
	}

	for _, outcome := range outcomes {
		resp := payrollrun.OutcomeResponse{
			EmployeeID:   outcome.EmployeeID,
			EmployeeName: outcome.EmployeeName,
			SlipID:       outcome.SlipID,
			Succeeded:    outcome.Succeeded,
			IsExisting:   outcome.IsExisting,
			Error:        outcome.Error,
		}
		if outcome.Succeeded {
			resp.SlipURL = "/api/v1/salary-slips/" + outcome.SlipID
			report.Succeeded = append(report.Succeeded, resp)
			if outcome.IsExisting {
				report.Summary.Reused++
			} else {
				report.Summary.Created++
			}
		} else {
			report.Failed = append(report.Failed, resp)
			report.Summary.Failed++
		}
	}

	return report
}

// ========== HELPERS ==========

func mapRunResponse(run *payrollrun.Run) payrollrun.RunResponse {
	employees := make([]payrollrun.WizardEmployeeResponse, 0, len(run.Employees))
	for _, emp := range run.Employees {
		employees = append(employees, mapEmployeeResponse(emp))
	}

	return payrollrun.RunResponse{
		ID:          run.ID,
		Status:      string(run.Status),
		PeriodStart: run.Period.Start.Format(dateFormat),
		PeriodEnd:   run.Period.End.Format(dateFormat),
		Employees:   employees,
	}
}

func mapEmployeeResponse(emp *payrollrun.WizardEmployee) payrollrun.WizardEmployeeResponse {
	return payrollrun.WizardEmployeeResponse{
		EmployeeID:         emp.EmployeeID,
		FullName:           emp.FullName,
		AvatarColor:        emp.AvatarColor,
		HasStructure:       emp.HasStructure,
		StructureName:      emp.StructureName,
		BaseSalary:         emp.BaseSalary,
		Selected:           emp.Selected,
		WorkedHours:        emp.WorkedHours,
		OvertimeHours:      emp.OvertimeHours,
		AdditionalEarnings: emp.AdditionalEarnings,
		EarningCategory:    string(emp.EarningCategory),
		PTOHours:           emp.PTOHours,
		HolidayHours:       emp.HolidayHours,
		SickHours:          emp.SickHours,
		TotalPay:           emp.TotalPay.Amount,
		TotalPayOverridden: emp.TotalPay.Overridden,
		PaymentMethod:      emp.PaymentMethod,
		Note:               emp.Note,
		BankName:           emp.BankName,
		BankAccountNumber:  emp.BankAccountNumber,
	}
}

package payrollrun

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// StandardMonthlyHours is the fixed divisor turning a monthly base salary
	// into an hourly rate. Not configurable.
	StandardMonthlyHours = 160

	// WorkdayHours converts worked hours into the payment-days figure sent to
	// the ERP backend.
	WorkdayHours = 8
)

// EarningCategory labels the typed additional-earning amount
type EarningCategory string

const (
	CategoryNone          EarningCategory = "none"
	CategoryReimbursement EarningCategory = "reimbursement"
	CategoryBonus         EarningCategory = "bonus"
	CategoryCommission    EarningCategory = "commission"
	CategoryAllowance     EarningCategory = "allowance"
)

// EarningCategories lists the selectable categories, "none" excluded.
var EarningCategories = []string{
	string(CategoryReimbursement),
	string(CategoryBonus),
	string(CategoryCommission),
	string(CategoryAllowance),
}

// Line labels on the generated salary slip
const (
	OvertimeLineLabel = "Overtime"
)

// PayAmount is a total-pay figure that is either derived from the formula or
// manually overridden by the operator. Recomputing from changed inputs clears
// the override.
type PayAmount struct {
	Amount     decimal.Decimal
	Overridden bool
}

// PayPeriod is a calendar date range, start and end inclusive, no time
// component. Invariant: Start <= End.
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// CurrentMonthPeriod returns the default pay period: first through last day
// of the month containing now.
func CurrentMonthPeriod(now time.Time) PayPeriod {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return PayPeriod{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// WizardEmployee is one roster row as it accumulates edits across the wizard
// steps. It never leaves process memory; abandoning the run discards it.
type WizardEmployee struct {
	EmployeeID  string
	FullName    string
	AvatarColor string

	// Pay eligibility, resolved from the compensation-structure assignment
	// lookup. Employees without a structure stay visible but cannot be
	// selected for generation.
	HasStructure  bool
	StructureName string
	BaseSalary    *decimal.Decimal

	Selected bool

	WorkedHours        int
	OvertimeHours      int
	AdditionalEarnings decimal.Decimal
	EarningCategory    EarningCategory

	// Informational only; these never enter the pay formula.
	PTOHours     int
	HolidayHours int
	SickHours    int

	TotalPay      PayAmount
	PaymentMethod string
	Note          string

	// Bank descriptors shown on the review screen
	BankName          string
	BankAccountNumber string
}

// RunStatus enum
type RunStatus string

const (
	RunStatusDraft     RunStatus = "draft"
	RunStatusGenerated RunStatus = "generated"
)

// Run is the in-memory wizard record carried from selection through
// generation. It is keyed by ID in the run store and owns no durable state.
type Run struct {
	ID        string
	Period    PayPeriod
	Employees []*WizardEmployee
	Status    RunStatus
	Outcomes  []Outcome
	CreatedAt time.Time
}

// FindEmployee returns the wizard employee with the given id, or nil.
func (r *Run) FindEmployee(employeeID string) *WizardEmployee {
	for _, emp := range r.Employees {
		if emp.EmployeeID == employeeID {
			return emp
		}
	}
	return nil
}

// SelectedEligible returns the employees that will be passed to generation.
func (r *Run) SelectedEligible() []*WizardEmployee {
	var result []*WizardEmployee
	for _, emp := range r.Employees {
		if emp.Selected && emp.HasStructure {
			result = append(result, emp)
		}
	}
	return result
}

// Outcome records the result of one slip-generation attempt for one
// employee. Immutable once recorded.
type Outcome struct {
	EmployeeID   string
	EmployeeName string
	SlipID       string
	Error        string
	Succeeded    bool
	IsExisting   bool
}

package payrollrun

import (
	"github.com/shopspring/decimal"

	"github.com/meridianhr/console-backend-go/internal/pkg/validator"
)

// ========== RUN DTOs ==========

type CreateRunRequest struct {
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.PeriodStart == nil) != (r.PeriodEnd == nil) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period_start and period_end must be provided together"})
	}
	if r.PeriodStart != nil && r.PeriodEnd != nil {
		start, okStart := validator.IsValidDate(*r.PeriodStart)
		if !okStart {
			errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
		}
		end, okEnd := validator.IsValidDate(*r.PeriodEnd)
		if !okEnd {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
		}
		if okStart && okEnd && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSelectionRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *UpdateSelectionRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	WorkedHours        *int             `json:"worked_hours,omitempty"`
	OvertimeHours      *int             `json:"overtime_hours,omitempty"`
	AdditionalEarnings *decimal.Decimal `json:"additional_earnings,omitempty"`
	EarningCategory    *string          `json:"earning_category,omitempty"`
	PTOHours           *int             `json:"pto_hours,omitempty"`
	HolidayHours       *int             `json:"holiday_hours,omitempty"`
	SickHours          *int             `json:"sick_hours,omitempty"`
	TotalPay           *decimal.Decimal `json:"total_pay,omitempty"`
	PaymentMethod      *string          `json:"payment_method,omitempty"`
	Note               *string          `json:"note,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkedHours != nil && *r.WorkedHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "worked_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && *r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.AdditionalEarnings != nil && r.AdditionalEarnings.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "additional_earnings", Message: "must be non-negative"})
	}
	if r.EarningCategory != nil && *r.EarningCategory != string(CategoryNone) && !validator.IsInSlice(*r.EarningCategory, EarningCategories) {
		errs = append(errs, validator.ValidationError{Field: "earning_category", Message: "must be one of: none, reimbursement, bonus, commission, allowance"})
	}
	if r.PTOHours != nil && *r.PTOHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "pto_hours", Message: "must be non-negative"})
	}
	if r.HolidayHours != nil && *r.HolidayHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "holiday_hours", Message: "must be non-negative"})
	}
	if r.SickHours != nil && *r.SickHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "sick_hours", Message: "must be non-negative"})
	}
	if r.TotalPay != nil && r.TotalPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_pay", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type WizardEmployeeResponse struct {
	EmployeeID         string           `json:"employee_id"`
	FullName           string           `json:"full_name"`
	AvatarColor        string           `json:"avatar_color,omitempty"`
	HasStructure       bool             `json:"has_structure"`
	StructureName      string           `json:"structure_name,omitempty"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	Selected           bool             `json:"selected"`
	WorkedHours        int              `json:"worked_hours"`
	OvertimeHours      int              `json:"overtime_hours"`
	AdditionalEarnings decimal.Decimal  `json:"additional_earnings"`
	EarningCategory    string           `json:"earning_category"`
	PTOHours           int              `json:"pto_hours"`
	HolidayHours       int              `json:"holiday_hours"`
	SickHours          int              `json:"sick_hours"`
	TotalPay           decimal.Decimal  `json:"total_pay"`
	TotalPayOverridden bool             `json:"total_pay_overridden"`
	PaymentMethod      string           `json:"payment_method,omitempty"`
	Note               string           `json:"note,omitempty"`
	BankName           string           `json:"bank_name,omitempty"`
	BankAccountNumber  string           `json:"bank_account_number,omitempty"`
}

type RunResponse struct {
	ID          string                   `json:"id"`
	Status      string                   `json:"status"`
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	Employees   []WizardEmployeeResponse `json:"employees"`
}

type ReviewRowResponse struct {
	EmployeeID         string          `json:"employee_id"`
	FullName           string          `json:"full_name"`
	WorkedHours        int             `json:"worked_hours"`
	OvertimeHours      int             `json:"overtime_hours"`
	AdditionalEarnings decimal.Decimal `json:"additional_earnings"`
	TotalPay           decimal.Decimal `json:"total_pay"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	BankName           string          `json:"bank_name,omitempty"`
	BankAccountNumber  string          `json:"bank_account_number,omitempty"`
}

type ReviewResponse struct {
	TotalNetWages           decimal.Decimal     `json:"total_net_wages"`
	TotalOvertimePremium    decimal.Decimal     `json:"total_overtime_premium"`
	TotalAdditionalEarnings decimal.Decimal     `json:"total_additional_earnings"`
	GrandTotal              decimal.Decimal     `json:"grand_total"`
	Employees               []ReviewRowResponse `json:"employees"`
}

type OutcomeResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	SlipID       string `json:"slip_id,omitempty"`
	SlipURL      string `json:"slip_url,omitempty"`
	Succeeded    bool   `json:"succeeded"`
	IsExisting   bool   `json:"is_existing"`
	Error        string `json:"error,omitempty"`
}

type OutcomeSummary struct {
	Created int `json:"created"`
	Reused  int `json:"reused"`
	Failed  int `json:"failed"`
}

type OutcomeReportResponse struct {
	Succeeded []OutcomeResponse `json:"succeeded"`
	Failed    []OutcomeResponse `json:"failed"`
	Summary   OutcomeSummary    `json:"summary"`
}

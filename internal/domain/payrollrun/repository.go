package payrollrun

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianhr/console-backend-go/internal/domain/employee"
)

// StructureAssignment links an employee to its compensation structure in the
// ERP backend. BaseAmount is the monthly base salary.
type StructureAssignment struct {
	StructureName string
	BaseAmount    decimal.Decimal
}

// EarningLine is one earnings row on a new salary slip.
type EarningLine struct {
	Label  string
	Amount decimal.Decimal
}

// NewSlip carries everything the ERP backend needs to create a salary slip.
type NewSlip struct {
	EmployeeID  string
	PostingDate time.Time
	Period      PayPeriod
	PaymentDays int
	Earnings    []EarningLine
}

// SlipHandle references a salary slip that exists in the ERP backend.
type SlipHandle struct {
	ID string
}

// PayrollGateway is the console's view of the ERP backend for the payroll
// run. The backend owns all durable state and enforces the one-slip-per-
// employee-per-period rule; CreateSalarySlip fails with a conflict-flavored
// error when a slip already exists.
type PayrollGateway interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	GetStructureAssignment(ctx context.Context, employeeID string) (*StructureAssignment, error)
	CreateSalarySlip(ctx context.Context, slip NewSlip) (SlipHandle, error)
	ListSalarySlips(ctx context.Context, employeeID string, period PayPeriod) ([]SlipHandle, error)
}

package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlipStatus enum, owned by the ERP backend
type SlipStatus string

const (
	SlipStatusDraft     SlipStatus = "draft"
	SlipStatusSubmitted SlipStatus = "submitted"
	SlipStatusCancelled SlipStatus = "cancelled"
)

// SlipLine is one earning or deduction row on a salary slip
type SlipLine struct {
	Label  string
	Amount decimal.Decimal
}

// SalarySlip is the remote per-employee, per-period pay record. The console
// reads it for the detail view and creates it during generation; it never
// updates or deletes one.
type SalarySlip struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	PostingDate    time.Time
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Earnings       []SlipLine
	Deductions     []SlipLine
	GrossPay       decimal.Decimal
	TotalDeduction decimal.Decimal
	NetPay         decimal.Decimal
	Status         SlipStatus
}

package payrollrun

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func base(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}

func TestTotalPay(t *testing.T) {
	// B=160000, H=160, O=10, A=5000 -> rate=1000 -> 160000 + 15000 + 5000
	total := TotalPay(base(160000), 160, 10, decimal.NewFromInt(5000))
	assert.True(t, total.Equal(decimal.NewFromInt(180000)), "got %s", total)
}

func TestTotalPay_NoOvertimeNoAdditional(t *testing.T) {
	total := TotalPay(base(160000), 120, 0, decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromInt(120000)), "got %s", total)
}

func TestTotalPay_RoundsToWholeCurrency(t *testing.T) {
	// rate = 100000/160 = 625; 31*625 = 19375, plus 0.40 additional
	total := TotalPay(base(100000), 31, 0, decimal.NewFromFloat(0.4))
	assert.True(t, total.Equal(decimal.NewFromInt(19375)), "got %s", total)

	total = TotalPay(base(100000), 31, 0, decimal.NewFromFloat(0.6))
	assert.True(t, total.Equal(decimal.NewFromInt(19376)), "got %s", total)
}

func TestTotalPay_NoBaseSalary(t *testing.T) {
	// No compensation structure means rate zero; only additional earnings
	// survive.
	total := TotalPay(nil, 160, 10, decimal.NewFromInt(2500))
	assert.True(t, total.Equal(decimal.NewFromInt(2500)), "got %s", total)
}

func TestHourlyRate(t *testing.T) {
	assert.True(t, HourlyRate(base(160000)).Equal(decimal.NewFromInt(1000)))
	assert.True(t, HourlyRate(nil).IsZero())
}

func TestOvertimePay(t *testing.T) {
	// 10h at rate 1000, 1.5x
	assert.True(t, OvertimePay(base(160000), 10).Equal(decimal.NewFromInt(15000)))
	assert.True(t, OvertimePay(base(160000), 0).IsZero())
	assert.True(t, OvertimePay(nil, 10).IsZero())
}

func TestOvertimePremium(t *testing.T) {
	// Only the incremental 0.5x portion
	assert.True(t, OvertimePremium(base(160000), 10).Equal(decimal.NewFromInt(5000)))
	assert.True(t, OvertimePremium(base(160000), 0).IsZero())
}

func TestPaymentDays(t *testing.T) {
	assert.Equal(t, 20, PaymentDays(160))
	assert.Equal(t, 19, PaymentDays(150)) // 18.75 rounds up
	assert.Equal(t, 0, PaymentDays(0))
	assert.Equal(t, 1, PaymentDays(4)) // 0.5 rounds up
}

func TestCurrentMonthPeriod(t *testing.T) {
	now := time.Date(2026, time.February, 12, 15, 30, 0, 0, time.UTC)
	period := CurrentMonthPeriod(now)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), period.End)
}

func TestRecomputeClearsOverride(t *testing.T) {
	emp := &WizardEmployee{
		BaseSalary:  base(160000),
		WorkedHours: 160,
	}
	emp.Recompute()
	assert.True(t, emp.TotalPay.Amount.Equal(decimal.NewFromInt(160000)))
	assert.False(t, emp.TotalPay.Overridden)

	// A manual override wins verbatim.
	emp.Override(decimal.NewFromInt(123456))
	assert.True(t, emp.TotalPay.Amount.Equal(decimal.NewFromInt(123456)))
	assert.True(t, emp.TotalPay.Overridden)

	// Until an input change rederives the figure.
	emp.OvertimeHours = 10
	emp.Recompute()
	assert.True(t, emp.TotalPay.Amount.Equal(decimal.NewFromInt(175000)))
	assert.False(t, emp.TotalPay.Overridden)
}

func TestRunSelectedEligible(t *testing.T) {
	run := &Run{
		Employees: []*WizardEmployee{
			{EmployeeID: "EMP-001", HasStructure: true, Selected: true},
			{EmployeeID: "EMP-002", HasStructure: false, Selected: true},
			{EmployeeID: "EMP-003", HasStructure: true, Selected: false},
		},
	}

	eligible := run.SelectedEligible()
	assert.Len(t, eligible, 1)
	assert.Equal(t, "EMP-001", eligible[0].EmployeeID)
}

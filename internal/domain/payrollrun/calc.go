package payrollrun

import "github.com/shopspring/decimal"

var (
	overtimeRate = decimal.NewFromFloat(1.5)
	premiumRate  = decimal.NewFromFloat(0.5)
	workdayHours = decimal.NewFromInt(WorkdayHours)
	stdHours     = decimal.NewFromInt(StandardMonthlyHours)
)

// HourlyRate derives the hourly rate from a monthly base salary. Employees
// without an assigned compensation structure have no base salary and rate
// zero.
func HourlyRate(baseSalary *decimal.Decimal) decimal.Decimal {
	if baseSalary == nil {
		return decimal.Zero
	}
	return baseSalary.Div(stdHours)
}

// TotalPay computes the derived per-employee pay figure:
//
//	round(worked*rate + overtime*rate*1.5 + additional)
//
// rounded to a whole currency amount.
func TotalPay(baseSalary *decimal.Decimal, workedHours, overtimeHours int, additionalEarnings decimal.Decimal) decimal.Decimal {
	rate := HourlyRate(baseSalary)
	regular := rate.Mul(decimal.NewFromInt(int64(workedHours)))
	overtime := rate.Mul(decimal.NewFromInt(int64(overtimeHours))).Mul(overtimeRate)
	return regular.Add(overtime).Add(additionalEarnings).Round(0)
}

// OvertimePay returns the full 1.5x overtime amount, rounded. This is the
// figure that becomes the Overtime earnings line on the salary slip.
func OvertimePay(baseSalary *decimal.Decimal, overtimeHours int) decimal.Decimal {
	return HourlyRate(baseSalary).
		Mul(decimal.NewFromInt(int64(overtimeHours))).
		Mul(overtimeRate).
		Round(0)
}

// OvertimePremium returns only the incremental 0.5x premium portion. The
// review screen reports this as its overtime breakdown line even though the
// per-employee total embeds the full 1.5x amount; the displayed grand total
// is the sum of totals, not of the breakdown lines.
func OvertimePremium(baseSalary *decimal.Decimal, overtimeHours int) decimal.Decimal {
	return HourlyRate(baseSalary).
		Mul(decimal.NewFromInt(int64(overtimeHours))).
		Mul(premiumRate).
		Round(0)
}

// PaymentDays converts worked hours to the payment-days figure on the slip:
// round(workedHours / 8).
func PaymentDays(workedHours int) int {
	return int(decimal.NewFromInt(int64(workedHours)).Div(workdayHours).Round(0).IntPart())
}

// Recompute refreshes the derived total from the current formula inputs and
// clears any manual override. Call after any input change.
func (e *WizardEmployee) Recompute() {
	e.TotalPay = PayAmount{
		Amount:     TotalPay(e.BaseSalary, e.WorkedHours, e.OvertimeHours, e.AdditionalEarnings),
		Overridden: false,
	}
}

// Override replaces the derived total verbatim. The override holds until the
// next input change recomputes the figure.
func (e *WizardEmployee) Override(amount decimal.Decimal) {
	e.TotalPay = PayAmount{Amount: amount, Overridden: true}
}

package statement

import "github.com/shopspring/decimal"

type SlipLineResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type SlipDetailResponse struct {
	ID             string             `json:"id"`
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   string             `json:"employee_name"`
	PostingDate    string             `json:"posting_date"`
	PeriodStart    string             `json:"period_start"`
	PeriodEnd      string             `json:"period_end"`
	Earnings       []SlipLineResponse `json:"earnings"`
	Deductions     []SlipLineResponse `json:"deductions"`
	GrossPay       decimal.Decimal    `json:"gross_pay"`
	TotalDeduction decimal.Decimal    `json:"total_deduction"`
	NetPay         decimal.Decimal    `json:"net_pay"`
	Status         string             `json:"status"`
}

package erpnext

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianhr/console-backend-go/internal/domain/statement"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

type slipRepository struct {
	client *erp.Client
}

func NewSlipRepository(client *erp.Client) statement.SlipRepository {
	return &slipRepository{client: client}
}

type slipLineDoc struct {
	SalaryComponent string          `json:"salary_component"`
	Amount          decimal.Decimal `json:"amount"`
}

type salarySlipDoc struct {
	Name           string          `json:"name"`
	Employee       string          `json:"employee"`
	EmployeeName   string          `json:"employee_name"`
	PostingDate    string          `json:"posting_date"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Earnings       []slipLineDoc   `json:"earnings"`
	Deductions     []slipLineDoc   `json:"deductions"`
	GrossPay       decimal.Decimal `json:"gross_pay"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
	NetPay         decimal.Decimal `json:"net_pay"`
	DocStatus      int             `json:"docstatus"`
}

func (r *slipRepository) GetSalarySlip(ctx context.Context, slipID string) (statement.SalarySlip, error) {
	var doc salarySlipDoc
	if err := r.client.GetDoc(ctx, "Salary Slip", slipID, &doc); err != nil {
		var apiErr *erp.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return statement.SalarySlip{}, statement.ErrSlipNotFound
		}
		return statement.SalarySlip{}, fmt.Errorf("failed to get salary slip %s: %w", slipID, err)
	}

	return statement.SalarySlip{
		ID:             doc.Name,
		EmployeeID:     doc.Employee,
		EmployeeName:   doc.EmployeeName,
		PostingDate:    parseDate(doc.PostingDate),
		PeriodStart:    parseDate(doc.StartDate),
		PeriodEnd:      parseDate(doc.EndDate),
		Earnings:       mapSlipLines(doc.Earnings),
		Deductions:     mapSlipLines(doc.Deductions),
		GrossPay:       doc.GrossPay,
		TotalDeduction: doc.TotalDeduction,
		NetPay:         doc.NetPay,
		Status:         mapSlipStatus(doc.DocStatus),
	}, nil
}

func mapSlipLines(docs []slipLineDoc) []statement.SlipLine {
	lines := make([]statement.SlipLine, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, statement.SlipLine{
			Label:  doc.SalaryComponent,
			Amount: doc.Amount,
		})
	}
	return lines
}

// The backend encodes lifecycle as a document status integer.
func mapSlipStatus(docStatus int) statement.SlipStatus {
	switch docStatus {
	case 1:
		return statement.SlipStatusSubmitted
	case 2:
		return statement.SlipStatusCancelled
	default:
		return statement.SlipStatusDraft
	}
}

func parseDate(value string) time.Time {
	parsed, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

package erpnext

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

type slipHandleDoc struct {
	Name string `json:"name"`
}

func (g *payrollGateway) CreateSalarySlip(ctx context.Context, slip payrollrun.NewSlip) (payrollrun.SlipHandle, error) {
	earnings := make([]map[string]any, 0, len(slip.Earnings))
	for _, line := range slip.Earnings {
		earnings = append(earnings, map[string]any{
			"salary_component": line.Label,
			"amount":           line.Amount.InexactFloat64(),
		})
	}

	doc := map[string]any{
		"employee":     slip.EmployeeID,
		"posting_date": slip.PostingDate.Format(dateFormat),
		"start_date":   slip.Period.Start.Format(dateFormat),
		"end_date":     slip.Period.End.Format(dateFormat),
		"payment_days": slip.PaymentDays,
	}
	if len(earnings) > 0 {
		doc["earnings"] = earnings
	}

	var created slipHandleDoc
	if err := g.client.CreateDoc(ctx, "Salary Slip", doc, &created); err != nil {
		if IsDuplicateSalarySlip(err) {
			return payrollrun.SlipHandle{}, fmt.Errorf("%w: %v", payrollrun.ErrSlipAlreadyExists, err)
		}
		return payrollrun.SlipHandle{}, fmt.Errorf("failed to create salary slip for %s: %w", slip.EmployeeID, err)
	}
	return payrollrun.SlipHandle{ID: created.Name}, nil
}

func (g *payrollGateway) ListSalarySlips(ctx context.Context, employeeID string, period payrollrun.PayPeriod) ([]payrollrun.SlipHandle, error) {
	var docs []slipHandleDoc
	err := g.client.GetList(ctx, "Salary Slip", erp.ListOptions{
		Fields: []string{"name"},
		Filters: [][]any{
			{"employee", "=", employeeID},
			{"start_date", "=", period.Start.Format(dateFormat)},
			{"end_date", "=", period.End.Format(dateFormat)},
		},
		OrderBy: "creation desc",
	}, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips for %s: %w", employeeID, err)
	}

	handles := make([]payrollrun.SlipHandle, 0, len(docs))
	for _, doc := range docs {
		handles = append(handles, payrollrun.SlipHandle{ID: doc.Name})
	}
	return handles, nil
}

// IsDuplicateSalarySlip reports whether an error from CreateSalarySlip is the
// backend's conflict signal for a slip that already exists for the employee
// and period. The backend only exposes this as message text, so the check is
// a substring match kept behind this single predicate.
func IsDuplicateSalarySlip(err error) bool {
	var apiErr *erp.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusConflict {
		return true
	}
	msg := strings.ToLower(apiErr.Message)
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "already created")
}

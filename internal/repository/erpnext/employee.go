package erpnext

import (
	"context"
	"fmt"

	"github.com/meridianhr/console-backend-go/internal/domain/employee"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

type employeeDoc struct {
	Name         string `json:"name"`
	EmployeeName string `json:"employee_name"`
	AvatarColor  string `json:"avatar_color"`
	BankName     string `json:"bank_name"`
	BankAcNo     string `json:"bank_ac_no"`
	PTOHours     int    `json:"pto_hours"`
	HolidayHours int    `json:"holiday_hours"`
	SickHours    int    `json:"sick_hours"`
}

func (g *payrollGateway) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var docs []employeeDoc
	err := g.client.GetList(ctx, "Employee", erp.ListOptions{
		Fields: []string{
			"name", "employee_name", "avatar_color",
			"bank_name", "bank_ac_no",
			"pto_hours", "holiday_hours", "sick_hours",
		},
		Filters: [][]any{{"status", "=", "Active"}},
		OrderBy: "employee_name asc",
	}, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		result = append(result, employee.Employee{
			ID:                doc.Name,
			FullName:          doc.EmployeeName,
			AvatarColor:       doc.AvatarColor,
			BankName:          doc.BankName,
			BankAccountNumber: doc.BankAcNo,
			PTOHours:          doc.PTOHours,
			HolidayHours:      doc.HolidayHours,
			SickHours:         doc.SickHours,
		})
	}
	return result, nil
}

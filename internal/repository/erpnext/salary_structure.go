package erpnext

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

type structureAssignmentDoc struct {
	SalaryStructure string          `json:"salary_structure"`
	Base            decimal.Decimal `json:"base"`
}

// GetStructureAssignment returns the employee's most recent compensation
// structure assignment, or nil when none exists.
func (g *payrollGateway) GetStructureAssignment(ctx context.Context, employeeID string) (*payrollrun.StructureAssignment, error) {
	var docs []structureAssignmentDoc
	err := g.client.GetList(ctx, "Salary Structure Assignment", erp.ListOptions{
		Fields:  []string{"salary_structure", "base"},
		Filters: [][]any{{"employee", "=", employeeID}, {"docstatus", "=", 1}},
		OrderBy: "from_date desc",
		Limit:   1,
	}, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to get structure assignment for %s: %w", employeeID, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	return &payrollrun.StructureAssignment{
		StructureName: docs[0].SalaryStructure,
		BaseAmount:    docs[0].Base,
	}, nil
}

package statement

import "context"

// SlipRepository reads salary slips from the ERP backend
type SlipRepository interface {
	GetSalarySlip(ctx context.Context, slipID string) (SalarySlip, error)
}

package statement

import "context"

// SlipService serves the pay-statement detail view
type SlipService interface {
	GetSlipDetail(ctx context.Context, slipID string) (SlipDetailResponse, error)
}

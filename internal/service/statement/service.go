package statement

import (
	"context"

	"github.com/meridianhr/console-backend-go/internal/domain/statement"
)

const dateFormat = "2006-01-02"

type SlipServiceImpl struct {
	slipRepo statement.SlipRepository
}

func NewSlipService(slipRepo statement.SlipRepository) statement.SlipService {
	return &SlipServiceImpl{slipRepo: slipRepo}
}

func (s *SlipServiceImpl) GetSlipDetail(ctx context.Context, slipID string) (statement.SlipDetailResponse, error) {
	slip, err := s.slipRepo.GetSalarySlip(ctx, slipID)
	if err != nil {
		return statement.SlipDetailResponse{}, err
	}

	return statement.SlipDetailResponse{
		ID:             slip.ID,
		EmployeeID:     slip.EmployeeID,
		EmployeeName:   slip.EmployeeName,
		PostingDate:    slip.PostingDate.Format(dateFormat),
		PeriodStart:    slip.PeriodStart.Format(dateFormat),
		PeriodEnd:      slip.PeriodEnd.Format(dateFormat),
		Earnings:       mapLines(slip.Earnings),
		Deductions:     mapLines(slip.Deductions),
		GrossPay:       slip.GrossPay,
		TotalDeduction: slip.TotalDeduction,
		NetPay:         slip.NetPay,
		Status:         string(slip.Status),
	}, nil
}

func mapLines(lines []statement.SlipLine) []statement.SlipLineResponse {
	result := make([]statement.SlipLineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, statement.SlipLineResponse{
			Label:  line.Label,
			Amount: line.Amount,
		})
	}
	return result
}

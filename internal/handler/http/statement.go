package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianhr/console-backend-go/internal/domain/statement"
	"github.com/meridianhr/console-backend-go/internal/handler/http/response"
)

type StatementHandler interface {
	GetSlipDetail(w http.ResponseWriter, r *http.Request)
}

type statementHandlerImpl struct {
	slipService statement.SlipService
}

func NewStatementHandler(slipService statement.SlipService) StatementHandler {
	return &statementHandlerImpl{slipService: slipService}
}

func (h *statementHandlerImpl) GetSlipDetail(w http.ResponseWriter, r *http.Request) {
	slipID := chi.URLParam(r, "slipID")
	if slipID == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	result, err := h.slipService.GetSlipDetail(r.Context(), slipID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

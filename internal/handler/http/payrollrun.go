package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/handler/http/response"
)

type PayrollRunHandler interface {
	CreateRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	UpdateSelection(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Outcomes(w http.ResponseWriter, r *http.Request)
	CancelRun(w http.ResponseWriter, r *http.Request)
}

type payrollRunHandlerImpl struct {
	runService payrollrun.RunService
}

func NewPayrollRunHandler(runService payrollrun.RunService) PayrollRunHandler {
	return &payrollRunHandlerImpl{runService: runService}
}

func (h *payrollRunHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	// The period override is optional, so an empty body is accepted. Decode
	// regardless of Content-Length; chunked requests report -1.
	var req payrollrun.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.runService.CreateRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run started", result)
}

func (h *payrollRunHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.runService.GetRun(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollRunHandlerImpl) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	var req payrollrun.UpdateSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.runService.UpdateSelection(r.Context(), runID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollRunHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	employeeID := chi.URLParam(r, "employeeID")
	if runID == "" || employeeID == "" {
		response.BadRequest(w, "Run ID and employee ID are required", nil)
		return
	}

	var req payrollrun.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.runService.UpdateEmployee(r.Context(), runID, employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollRunHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.runService.Review(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollRunHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.runService.Generate(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip generation finished", result)
}

func (h *payrollRunHandlerImpl) Outcomes(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.runService.Outcomes(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollRunHandlerImpl) CancelRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	if err := h.runService.CancelRun(r.Context(), runID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run discarded", nil)
}

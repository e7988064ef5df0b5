package erpnext

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

func TestCreateSalarySlip(t *testing.T) {
	var gotBody map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/resource/Salary Slip", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Write([]byte(`{"data":{"name":"SAL-2026-0001"}}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	handle, err := gateway.CreateSalarySlip(context.Background(), payrollrun.NewSlip{
		EmployeeID:  "HR-EMP-001",
		PostingDate: time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC),
		Period:      testPeriod(),
		PaymentDays: 20,
		Earnings: []payrollrun.EarningLine{
			{Label: "Overtime", Amount: decimal.NewFromInt(15000)},
			{Label: "Bonus", Amount: decimal.NewFromInt(5000)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "SAL-2026-0001", handle.ID)

	assert.Equal(t, "HR-EMP-001", gotBody["employee"])
	assert.Equal(t, "2026-02-10", gotBody["posting_date"])
	assert.Equal(t, "2026-02-01", gotBody["start_date"])
	assert.Equal(t, "2026-02-28", gotBody["end_date"])
	assert.Equal(t, float64(20), gotBody["payment_days"])

	earnings, ok := gotBody["earnings"].([]any)
	require.True(t, ok)
	require.Len(t, earnings, 2)
	first := earnings[0].(map[string]any)
	assert.Equal(t, "Overtime", first["salary_component"])
	assert.Equal(t, float64(15000), first["amount"])
}

func TestCreateSalarySlip_NoEarningsOmitsBlock(t *testing.T) {
	var gotBody map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"data":{"name":"SAL-2026-0002"}}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	_, err := gateway.CreateSalarySlip(context.Background(), payrollrun.NewSlip{
		EmployeeID:  "HR-EMP-001",
		PostingDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		Period:      testPeriod(),
		PaymentDays: 20,
	})
	require.NoError(t, err)
	assert.NotContains(t, gotBody, "earnings")
}

func TestCreateSalarySlip_DuplicateMapsToConflictSentinel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusExpectationFailed)
		w.Write([]byte(`{"exc_type":"DuplicateEntryError","exception":"frappe.DuplicateEntryError: Salary Slip already created for this period"}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	_, err := gateway.CreateSalarySlip(context.Background(), payrollrun.NewSlip{
		EmployeeID: "HR-EMP-001",
		Period:     testPeriod(),
	})
	require.ErrorIs(t, err, payrollrun.ErrSlipAlreadyExists)
}

func TestCreateSalarySlip_OtherFailureIsNotConflict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"exc_type":"ValidationError","exception":"frappe.ValidationError: Payroll frequency missing"}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	_, err := gateway.CreateSalarySlip(context.Background(), payrollrun.NewSlip{
		EmployeeID: "HR-EMP-001",
		Period:     testPeriod(),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, payrollrun.ErrSlipAlreadyExists)
}

func TestListSalarySlips(t *testing.T) {
	var gotFilters string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resource/Salary Slip", r.URL.Path)
		gotFilters = r.URL.Query().Get("filters")
		w.Write([]byte(`{"data":[{"name":"SAL-2026-0007"}]}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	handles, err := gateway.ListSalarySlips(context.Background(), "HR-EMP-001", testPeriod())
	require.NoError(t, err)

	assert.JSONEq(t, `[
		["employee","=","HR-EMP-001"],
		["start_date","=","2026-02-01"],
		["end_date","=","2026-02-28"]
	]`, gotFilters)
	require.Len(t, handles, 1)
	assert.Equal(t, "SAL-2026-0007", handles[0].ID)
}

func TestIsDuplicateSalarySlip(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "conflict status",
			err:  &erp.APIError{StatusCode: http.StatusConflict, Message: "Duplicate"},
			want: true,
		},
		{
			name: "already exists message",
			err:  &erp.APIError{StatusCode: http.StatusExpectationFailed, Message: "Salary Slip SAL-0001 already exists"},
			want: true,
		},
		{
			name: "already created message",
			err:  &erp.APIError{StatusCode: http.StatusExpectationFailed, Message: "Salary Slip already created for this period"},
			want: true,
		},
		{
			name: "unrelated api error",
			err:  &erp.APIError{StatusCode: http.StatusInternalServerError, Message: "ValidationError"},
			want: false,
		},
		{
			name: "not an api error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateSalarySlip(tt.err))
		})
	}
}

package erpnext

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhr/console-backend-go/internal/domain/statement"
)

func TestGetSalarySlip(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resource/Salary Slip/SAL-2026-0001", r.URL.Path)
		w.Write([]byte(`{"data":{
			"name":"SAL-2026-0001",
			"employee":"HR-EMP-001",
			"employee_name":"Alice Tan",
			"posting_date":"2026-02-10",
			"start_date":"2026-02-01",
			"end_date":"2026-02-28",
			"earnings":[
				{"salary_component":"Basic","amount":160000},
				{"salary_component":"Overtime","amount":15000}
			],
			"deductions":[{"salary_component":"Income Tax","amount":8000}],
			"gross_pay":175000,
			"total_deduction":8000,
			"net_pay":167000,
			"docstatus":1
		}}`))
	})
	repo := NewSlipRepository(newTestClient(t, handler))

	slip, err := repo.GetSalarySlip(context.Background(), "SAL-2026-0001")
	require.NoError(t, err)

	assert.Equal(t, "SAL-2026-0001", slip.ID)
	assert.Equal(t, "HR-EMP-001", slip.EmployeeID)
	assert.Equal(t, "Alice Tan", slip.EmployeeName)
	assert.Equal(t, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), slip.PostingDate)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), slip.PeriodStart)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), slip.PeriodEnd)
	require.Len(t, slip.Earnings, 2)
	assert.Equal(t, "Overtime", slip.Earnings[1].Label)
	assert.True(t, slip.Earnings[1].Amount.Equal(decimal.NewFromInt(15000)))
	require.Len(t, slip.Deductions, 1)
	assert.True(t, slip.NetPay.Equal(decimal.NewFromInt(167000)))
	assert.Equal(t, statement.SlipStatusSubmitted, slip.Status)
}

func TestGetSalarySlip_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"exc_type":"DoesNotExistError","exception":"frappe.DoesNotExistError: Salary Slip SAL-404 not found"}`))
	})
	repo := NewSlipRepository(newTestClient(t, handler))

	_, err := repo.GetSalarySlip(context.Background(), "SAL-404")
	assert.ErrorIs(t, err, statement.ErrSlipNotFound)
}

func TestMapSlipStatus(t *testing.T) {
	assert.Equal(t, statement.SlipStatusDraft, mapSlipStatus(0))
	assert.Equal(t, statement.SlipStatusSubmitted, mapSlipStatus(1))
	assert.Equal(t, statement.SlipStatusCancelled, mapSlipStatus(2))
}

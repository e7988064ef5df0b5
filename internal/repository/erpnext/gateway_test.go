package erpnext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhr/console-backend-go/internal/config"
	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

func newTestClient(t *testing.T, handler http.Handler) *erp.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return erp.NewClient(config.ERPConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APISecret: "test-secret",
		Timeout:   5 * time.Second,
	})
}

func TestListEmployees(t *testing.T) {
	var gotFilters, gotFields, gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/resource/Employee", r.URL.Path)
		gotFilters = r.URL.Query().Get("filters")
		gotFields = r.URL.Query().Get("fields")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"name":"HR-EMP-001","employee_name":"Alice Tan","avatar_color":"#f97316",
			 "bank_name":"BCA","bank_ac_no":"1234567890",
			 "pto_hours":16,"holiday_hours":8,"sick_hours":4},
			{"name":"HR-EMP-002","employee_name":"Budi Santoso"}
		]}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	employees, err := gateway.ListEmployees(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "token test-key:test-secret", gotAuth)
	assert.JSONEq(t, `[["status","=","Active"]]`, gotFilters)
	assert.Contains(t, gotFields, "bank_ac_no")
	require.Len(t, employees, 2)
	assert.Equal(t, "HR-EMP-001", employees[0].ID)
	assert.Equal(t, "Alice Tan", employees[0].FullName)
	assert.Equal(t, "#f97316", employees[0].AvatarColor)
	assert.Equal(t, "BCA", employees[0].BankName)
	assert.Equal(t, "1234567890", employees[0].BankAccountNumber)
	assert.Equal(t, 16, employees[0].PTOHours)
	assert.Equal(t, 8, employees[0].HolidayHours)
	assert.Equal(t, 4, employees[0].SickHours)
	assert.Empty(t, employees[1].BankName)
}

func TestListEmployees_UpstreamError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"exc_type":"ValidationError","exception":"frappe.ValidationError: boom"}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	_, err := gateway.ListEmployees(context.Background())
	require.Error(t, err)

	var apiErr *erp.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "ValidationError", apiErr.ExcType)
}

func TestGetStructureAssignment(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resource/Salary Structure Assignment", r.URL.Path)
		assert.JSONEq(t, `[["employee","=","HR-EMP-001"],["docstatus","=",1]]`, r.URL.Query().Get("filters"))
		assert.Equal(t, "1", r.URL.Query().Get("limit_page_length"))

		w.Write([]byte(`{"data":[{"salary_structure":"Monthly Standard","base":160000}]}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	assignment, err := gateway.GetStructureAssignment(context.Background(), "HR-EMP-001")
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, "Monthly Standard", assignment.StructureName)
	assert.True(t, assignment.BaseAmount.Equal(decimal.NewFromInt(160000)))
}

func TestGetStructureAssignment_NoneAssigned(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	gateway := NewPayrollGateway(newTestClient(t, handler))

	assignment, err := gateway.GetStructureAssignment(context.Background(), "HR-EMP-002")
	require.NoError(t, err)
	assert.Nil(t, assignment)
}

func testPeriod() payrollrun.PayPeriod {
	return payrollrun.PayPeriod{
		Start: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
	}
}

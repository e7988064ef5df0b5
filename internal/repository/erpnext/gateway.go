// Package erpnext implements the console's repositories against the HR/ERP
// backend's resource-oriented HTTP API. The backend is the source of truth
// for every durable record; this package only maps doctypes onto domain
// types.
package erpnext

import (
	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
)

const dateFormat = "2006-01-02"

type payrollGateway struct {
	client *erp.Client
}

func NewPayrollGateway(client *erp.Client) payrollrun.PayrollGateway {
	return &payrollGateway{client: client}
}

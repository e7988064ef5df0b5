package payrollrun

import "errors"

var (
	ErrRunNotFound         = errors.New("payroll run not found")
	ErrRosterUnavailable   = errors.New("employee roster could not be loaded")
	ErrEmployeeNotInRun    = errors.New("employee is not part of this payroll run")
	ErrEmployeeNotEligible = errors.New("employee has no compensation structure assigned")
	ErrRunAlreadyGenerated = errors.New("payroll run has already been generated")
	ErrRunNotGenerated     = errors.New("payroll run has not been generated yet")
	ErrSlipAlreadyExists   = errors.New("salary slip already exists for this employee and period")
	ErrNoEmployeesSelected = errors.New("no eligible employees selected for generation")
)

package employee

// Employee is the roster entry as the ERP backend reports it. The console
// only reads the directory; everything payroll-specific is layered on top in
// the payrollrun domain.
type Employee struct {
	ID          string
	FullName    string
	AvatarColor string

	// Bank descriptors shown on the payroll review screen
	BankName          string
	BankAccountNumber string

	// Time-off hour balances for the current period, informational only
	PTOHours     int
	HolidayHours int
	SickHours    int
}

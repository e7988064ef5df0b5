package statement

import "errors"

var (
	ErrSlipNotFound = errors.New("salary slip not found")
)

package contract

import "errors"

var (
	ErrNotContractEmployee = errors.New("employee is not on a contract")
	ErrMissingContractEnd  = errors.New("contract employee has no contract end date")
)

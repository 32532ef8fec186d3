package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNIKExists          = errors.New("NIK already registered")
	ErrInvalidNIK         = errors.New("NIK must be exactly 16 digits")
	ErrInvalidContractEnd = errors.New("contract end date must be after contract start date")
)

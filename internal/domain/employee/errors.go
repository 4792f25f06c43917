package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeAlreadyDeleted = errors.New("employee not found or already deleted")
)

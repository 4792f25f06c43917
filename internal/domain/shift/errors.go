package shift

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

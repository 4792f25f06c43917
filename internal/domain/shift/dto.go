package shift

import (
	"strings"

	"github.com/ymerta/vardiya/internal/pkg/timeutil"
	"github.com/ymerta/vardiya/internal/pkg/validator"
)

// CreateShiftRequest carries a whole shift value object. Work and
// leave variants share the payload; which fields count depends on
// is_leave.
type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	IsLeave    bool    `json:"is_leave"`
	LeaveType  string  `json:"leave_type"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	BreakMin   int     `json:"break_min"`
	Notes      *string `json:"notes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !timeutil.IsValidCalendarDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if r.IsLeave {
		if validator.IsEmpty(r.LeaveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type is required for leave records",
			})
		} else if !validator.IsInSlice(r.LeaveType, LeaveTypeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must be one of: " + strings.Join(LeaveTypeValues, ", "),
			})
		}
	} else {
		if !timeutil.IsValidTimeOfDay(r.Start) {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be a valid HH:mm time",
			})
		}
		if !timeutil.IsValidTimeOfDay(r.End) {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be a valid HH:mm time",
			})
		}
		if r.BreakMin < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "break_min",
				Message: "break_min must be a non-negative number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateShiftRequest replaces the whole record. Shift edits come in as
// complete value objects, not field patches.
type UpdateShiftRequest struct {
	ID string `json:"-"`
	CreateShiftRequest
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	IsLeave      bool    `json:"is_leave"`
	LeaveType    *string `json:"leave_type,omitempty"`
	Start        string  `json:"start,omitempty"`
	End          string  `json:"end,omitempty"`
	BreakMin     int     `json:"break_min"`
	TotalHours   float64 `json:"total_hours"`
	Notes        *string `json:"notes,omitempty"`
}

type ShiftFilter struct {
	EmployeeID *string
	Year       int
	Month      int
	Date       *string
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && !timeutil.IsValidCalendarDate(*f.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}
	if f.Date == nil {
		if f.Month < 1 || f.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
		if f.Year < 2000 || f.Year > 2100 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be between 2000 and 2100",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package timesheet

import "context"

type TimesheetRepository interface {
	// Upsert replaces the snapshot for the employee and period.
	Upsert(ctx context.Context, t Timesheet) error
	GetByPeriod(ctx context.Context, period string) ([]Timesheet, error)
	DeleteByEmployeeAndPeriod(ctx context.Context, employeeID, period string) error
}

package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet is a denormalized per-employee, per-month snapshot of
// worked hours and pay, refreshed on every shift write and reconciled
// by a background job. It exists for cheap dashboard reads only; the
// monthly report always recomputes from the source shift records.
type Timesheet struct {
	EmployeeID  string
	Period      string // "YYYY-MM"
	TotalHours  float64
	TotalPay    decimal.Decimal
	LastUpdated time.Time
}

// PeriodOf formats t's month in loc as a timesheet period key.
func PeriodOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01")
}

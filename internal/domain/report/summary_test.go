package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
)

func emp(id, name string, rate float64, active bool) employee.Employee {
	return employee.Employee{
		ID:         id,
		FullName:   name,
		HourlyRate: decimal.NewFromFloat(rate),
		Active:     active,
	}
}

func workShift(employeeID string, hours float64) shift.Shift {
	return shift.Shift{
		ID:         "s-" + employeeID,
		EmployeeID: employeeID,
		Date:       time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		TotalHours: hours,
	}
}

func leaveShift(employeeID string, lt shift.LeaveType) shift.Shift {
	return shift.Shift{
		ID:         "l-" + employeeID,
		EmployeeID: employeeID,
		Date:       time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC),
		IsLeave:    true,
		LeaveType:  &lt,
	}
}

func TestSummarize_OneRowPerRosterEmployee(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{
		emp("e1", "Mustafa (1)", 150, true),
		emp("e2", "Mustafa (2)", 150, true),
		emp("e3", "Ayşe Yılmaz", 140, true),
		emp("e4", "Mehmet Demir", 160, false),
	}
	shifts := []shift.Shift{
		workShift("e1", 9.0),
		workShift("e2", 7.5),
	}

	rows, orphans := Summarize(shifts, roster)

	require.Len(t, rows, len(roster), "one row per roster employee, zero-hour rows included")
	assert.Zero(t, orphans)

	// Sorted by hours descending; the two zero-hour employees keep
	// roster order (stable tie-break).
	assert.Equal(t, "e1", rows[0].Employee.ID)
	assert.Equal(t, "e2", rows[1].Employee.ID)
	assert.Equal(t, "e3", rows[2].Employee.ID)
	assert.Equal(t, "e4", rows[3].Employee.ID)

	assert.InDelta(t, 9.0, rows[0].TotalHours, 1e-9)
	assert.True(t, rows[0].TotalPay.Equal(decimal.NewFromFloat(1350)), rows[0].TotalPay.String())
	assert.Zero(t, rows[2].TotalHours)
	assert.True(t, rows[2].TotalPay.IsZero())
}

func TestSummarize_LeaveRecordsNeverCount(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{emp("e1", "Mustafa", 150, true)}

	// A leave record with stray start/end/break values must still
	// contribute nothing.
	stray := leaveShift("e1", shift.LeaveTypeAnnual)
	stray.Start = "09:00"
	stray.End = "17:00"
	stray.BreakMin = 30
	stray.TotalHours = 8 // corrupt derived value; leave wins

	rows, _ := Summarize([]shift.Shift{workShift("e1", 4.5), stray}, roster)

	require.Len(t, rows, 1)
	assert.InDelta(t, 4.5, rows[0].TotalHours, 1e-9)
	assert.True(t, rows[0].TotalPay.Equal(decimal.NewFromFloat(675)), rows[0].TotalPay.String())
}

func TestSummarize_RoundsAfterSummation(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{emp("e1", "Mustafa", 150, true)}

	// Three records of 2.333..h (e.g. 09:00-11:20). Per-record rounding
	// would give 3 x 2.33 = 6.99; the sum rounds to 7.00.
	third := 2.0 + 1.0/3.0
	shifts := []shift.Shift{
		workShift("e1", third), workShift("e1", third), workShift("e1", third),
	}

	rows, _ := Summarize(shifts, roster)
	assert.InDelta(t, 7.00, rows[0].TotalHours, 1e-9)
	assert.True(t, rows[0].TotalPay.Equal(decimal.NewFromFloat(1050)), rows[0].TotalPay.String())
}

func TestSummarize_OrphanedShiftsSkipped(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{emp("e1", "Mustafa", 150, true)}
	shifts := []shift.Shift{
		workShift("e1", 8),
		workShift("ghost", 5),
		workShift("ghost", 3),
	}

	rows, orphans := Summarize(shifts, roster)

	require.Len(t, rows, 1)
	assert.Equal(t, 2, orphans)
	assert.InDelta(t, 8.0, rows[0].TotalHours, 1e-9)
}

func TestSummarize_StableTieOrder(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{
		emp("e1", "A", 100, true),
		emp("e2", "B", 100, true),
		emp("e3", "C", 100, true),
	}
	shifts := []shift.Shift{
		workShift("e1", 6),
		workShift("e2", 6),
		workShift("e3", 6),
	}

	rows, _ := Summarize(shifts, roster)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{
		rows[0].Employee.ID, rows[1].Employee.ID, rows[2].Employee.ID,
	})
}

func TestSummarize_Idempotent(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{
		emp("e1", "Mustafa (1)", 150, true),
		emp("e2", "Ayşe", 140.5, true),
	}
	shifts := []shift.Shift{
		workShift("e1", 9),
		workShift("e2", 7.52),
		leaveShift("e1", shift.LeaveTypeMedical),
	}

	first, firstOrphans := Summarize(shifts, roster)
	second, secondOrphans := Summarize(shifts, roster)

	assert.Equal(t, first, second)
	assert.Equal(t, firstOrphans, secondOrphans)
	assert.Equal(t, GrandTotal(first), GrandTotal(second))
}

func TestGrandTotal(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{
		emp("e1", "Mustafa (1)", 150, true),
		emp("e2", "Mustafa (2)", 150, true),
		emp("e3", "Ayşe", 140, true),
	}
	shifts := []shift.Shift{
		workShift("e1", 9.0),
		workShift("e2", 7.5),
	}

	rows, _ := Summarize(shifts, roster)
	totals := GrandTotal(rows)

	// Sum of the already-rounded row values, not a re-derivation.
	var wantHours float64
	wantPay := decimal.Zero
	for _, row := range rows {
		wantHours += row.TotalHours
		wantPay = wantPay.Add(row.TotalPay)
	}
	assert.InDelta(t, wantHours, totals.TotalHours, 1e-9)
	assert.True(t, totals.TotalPay.Equal(wantPay), totals.TotalPay.String())

	assert.InDelta(t, 16.5, totals.TotalHours, 1e-9)
	assert.True(t, totals.TotalPay.Equal(decimal.NewFromFloat(2475)), totals.TotalPay.String())
	// 2475 / 16.5 = 150.00
	assert.True(t, totals.AverageHourlyRate.Equal(decimal.NewFromFloat(150)), totals.AverageHourlyRate.String())
	assert.Equal(t, 2, totals.EmployeeCount, "only employees with nonzero hours")
}

func TestGrandTotal_EmptyMonth(t *testing.T) {
	t.Parallel()

	rows, _ := Summarize(nil, []employee.Employee{emp("e1", "Mustafa", 150, true)})
	totals := GrandTotal(rows)

	assert.Zero(t, totals.TotalHours)
	assert.True(t, totals.TotalPay.IsZero())
	assert.True(t, totals.AverageHourlyRate.IsZero(), "average rate is zero when no hours")
	assert.Zero(t, totals.EmployeeCount)
}

package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
	employeeService "github.com/ymerta/vardiya/internal/service/employee"
	shiftService "github.com/ymerta/vardiya/internal/service/shift"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

type seedEmployee struct {
	fullName   string
	hourlyRate int64
	active     bool
}

type seedShift struct {
	employee  int // index into the seeded employees
	date      string
	start     string
	end       string
	breakMin  int
	isLeave   bool
	leaveType string
	notes     string
}

var seedEmployees = []seedEmployee{
	{fullName: "Mustafa (1)", hourlyRate: 150, active: true},
	{fullName: "Mustafa (2)", hourlyRate: 150, active: true},
	{fullName: "Ayşe Yılmaz", hourlyRate: 140, active: true},
	{fullName: "Mehmet Demir", hourlyRate: 160, active: false},
}

// The demo month exercises the calculator's edge cases: a plain day
// shift, an overnight shift, and an end at 00:00 meaning midnight at
// the end of the day.
var seedShifts = []seedShift{
	{employee: 0, date: "2025-09-10", start: "10:00", end: "20:00", breakMin: 60, notes: "Normal vardiya"},
	{employee: 1, date: "2025-09-11", start: "21:00", end: "05:00", breakMin: 30, notes: "Gece vardiyası"},
	{employee: 0, date: "2025-09-12", start: "10:00", end: "00:00", breakMin: 30, notes: "Gece yarısına kadar"},
	{employee: 1, date: "2025-09-13", start: "08:00", end: "16:00", breakMin: 45, notes: "Sabah vardiyası"},
	{employee: 0, date: "2025-09-14", start: "14:00", end: "22:00", breakMin: 30, notes: "Öğleden sonra vardiyası"},
	{employee: 2, date: "2025-09-15", start: "09:00", end: "17:00", breakMin: 60, notes: "Hafta sonu vardiyası"},
	{employee: 2, date: "2025-09-16", start: "12:00", end: "20:00", breakMin: 30},
	{employee: 2, date: "2025-09-17", isLeave: true, leaveType: "annual", notes: "Yıllık izin"},
}

type SeedResult struct {
	EmployeeCount int
	ShiftCount    int
}

// SeedDemoData loads the demo roster and a sample month through the
// services, so hours are computed and timesheets refreshed exactly as
// they would be for real writes.
func SeedDemoData(ctx context.Context, employees *employeeService.EmployeeService, shifts *shiftService.ShiftService) (SeedResult, error) {
	var result SeedResult

	employeeIDs := make([]string, 0, len(seedEmployees))
	for _, e := range seedEmployees {
		created, err := employees.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   e.fullName,
			HourlyRate: decimal.NewFromInt(e.hourlyRate),
			Active:     boolPtr(e.active),
		})
		if err != nil {
			return result, fmt.Errorf("failed to seed employee %q: %w", e.fullName, err)
		}
		slog.Info("Seeded employee", "name", created.FullName, "id", created.ID)
		employeeIDs = append(employeeIDs, created.ID)
		result.EmployeeCount++
	}

	for _, s := range seedShifts {
		req := shift.CreateShiftRequest{
			EmployeeID: employeeIDs[s.employee],
			Date:       s.date,
			IsLeave:    s.isLeave,
			LeaveType:  s.leaveType,
			Start:      s.start,
			End:        s.end,
			BreakMin:   s.breakMin,
		}
		if s.notes != "" {
			req.Notes = strPtr(s.notes)
		}

		created, err := shifts.Create(ctx, req)
		if err != nil {
			return result, fmt.Errorf("failed to seed shift on %s: %w", s.date, err)
		}
		slog.Info("Seeded shift", "date", created.Date, "employee", created.EmployeeName, "hours", created.TotalHours)
		result.ShiftCount++
	}

	return result, nil
}

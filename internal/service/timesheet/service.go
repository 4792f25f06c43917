package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/domain/timesheet"
	"github.com/ymerta/vardiya/internal/pkg/database"
	"github.com/ymerta/vardiya/internal/pkg/timeutil"
	"github.com/ymerta/vardiya/internal/repository/postgresql"
)

type Service interface {
	// Refresh recomputes the snapshot for one employee's month from the
	// source shift records.
	Refresh(ctx context.Context, employeeID string, monthOf time.Time) error
	// ReconcileMonth refreshes every roster employee's snapshot for the
	// month containing t. Run periodically to repair drift.
	ReconcileMonth(ctx context.Context, t time.Time) error
	GetByPeriod(ctx context.Context, period string) ([]timesheet.Timesheet, error)
}

type TimesheetService struct {
	timesheetRepo timesheet.TimesheetRepository
	shiftRepo     shift.ShiftRepository
	employeeRepo  employee.EmployeeRepository
	loc           *time.Location
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) Service {
	return &TimesheetService{
		timesheetRepo: timesheetRepo,
		shiftRepo:     shiftRepo,
		employeeRepo:  employeeRepo,
		loc:           loc,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Refresh runs in a transaction so the snapshot never reflects a
// half-applied shift write.
func (s *TimesheetService) Refresh(ctx context.Context, employeeID string, monthOf time.Time) error {
	return s.runTx(ctx, func(ctx context.Context) error {
		return s.refresh(ctx, employeeID, monthOf)
	})
}

func (s *TimesheetService) refresh(ctx context.Context, employeeID string, monthOf time.Time) error {
	period := timesheet.PeriodOf(monthOf, s.loc)

	// Soft-deleted employees keep their snapshots: the monthly report
	// still lists them. Only a row that is gone outright is stale.
	emp, err := s.employeeRepo.GetByIDIncludingDeleted(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return s.timesheetRepo.DeleteByEmployeeAndPeriod(ctx, employeeID, period)
		}
		return fmt.Errorf("failed to resolve employee %s: %w", employeeID, err)
	}

	local := monthOf.In(s.loc)
	start, end := timeutil.MonthRange(local.Year(), local.Month(), s.loc)
	shifts, err := s.shiftRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return fmt.Errorf("failed to load shifts for %s/%s: %w", employeeID, period, err)
	}

	var sum float64
	for _, sh := range shifts {
		if sh.IsLeave {
			continue
		}
		sum += sh.TotalHours
	}

	return s.timesheetRepo.Upsert(ctx, timesheet.Timesheet{
		EmployeeID: employeeID,
		Period:     period,
		TotalHours: timeutil.Round2(sum),
		TotalPay:   emp.HourlyRate.Mul(decimal.NewFromFloat(sum)).Round(2),
	})
}

func (s *TimesheetService) ReconcileMonth(ctx context.Context, t time.Time) error {
	roster, err := s.employeeRepo.List(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	for _, emp := range roster {
		if err := s.Refresh(ctx, emp.ID, t); err != nil {
			// One bad snapshot must not block the rest of the roster.
			slog.Warn("timesheet refresh failed", "employee_id", emp.ID, "error", err)
		}
	}
	return nil
}

func (s *TimesheetService) GetByPeriod(ctx context.Context, period string) ([]timesheet.Timesheet, error) {
	return s.timesheetRepo.GetByPeriod(ctx, period)
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/ymerta/vardiya/internal/domain/timesheet"
	"github.com/ymerta/vardiya/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// Upsert implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Upsert(ctx context.Context, t timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (employee_id, period, total_hours, total_pay, last_updated)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (employee_id, period)
		DO UPDATE SET total_hours = EXCLUDED.total_hours,
		              total_pay = EXCLUDED.total_pay,
		              last_updated = NOW()
	`

	if _, err := q.Exec(ctx, query, t.EmployeeID, t.Period, t.TotalHours, t.TotalPay); err != nil {
		return fmt.Errorf("failed to upsert timesheet %s/%s: %w", t.EmployeeID, t.Period, err)
	}
	return nil
}

// GetByPeriod implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByPeriod(ctx context.Context, period string) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, period, total_hours, total_pay, last_updated
		FROM timesheets
		WHERE period = $1
		ORDER BY total_hours DESC
	`

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		var t timesheet.Timesheet
		if err := rows.Scan(&t.EmployeeID, &t.Period, &t.TotalHours, &t.TotalPay, &t.LastUpdated); err != nil {
			return nil, err
		}
		sheets = append(sheets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return sheets, nil
}

// DeleteByEmployeeAndPeriod implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) DeleteByEmployeeAndPeriod(ctx context.Context, employeeID, period string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM timesheets WHERE employee_id = $1 AND period = $2`, employeeID, period); err != nil {
		return fmt.Errorf("failed to delete timesheet %s/%s: %w", employeeID, period, err)
	}
	return nil
}

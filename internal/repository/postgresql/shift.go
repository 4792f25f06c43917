package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, employee_id, date, is_leave, leave_type, start_time, end_time, break_min, total_hours, notes, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	var start, end *string
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.IsLeave, &s.LeaveType,
		&start, &end, &s.BreakMin, &s.TotalHours, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if start != nil {
		s.Start = *start
	}
	if end != nil {
		s.End = *end
	}
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, date, is_leave, leave_type, start_time, end_time, break_min, total_hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		newShift.EmployeeID, newShift.Date, newShift.IsLeave, newShift.LeaveType,
		nullIfEmpty(newShift.Start), nullIfEmpty(newShift.End),
		newShift.BreakMin, newShift.TotalHours, newShift.Notes,
	))
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return s, nil
}

// ListByRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE date >= $1 AND date < $2 ORDER BY date, created_at`
	return r.queryShifts(ctx, q, query, start, end)
}

// ListByEmployeeAndRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE employee_id = $1 AND date >= $2 AND date < $3 ORDER BY date, created_at`
	return r.queryShifts(ctx, q, query, employeeID, start, end)
}

func (r *shiftRepositoryImpl) queryShifts(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]shift.Shift, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Update implements shift.ShiftRepository. The whole record is
// replaced; shift edits are full value objects, not patches.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $2, date = $3, is_leave = $4, leave_type = $5,
		    start_time = $6, end_time = $7, break_min = $8, total_hours = $9,
		    notes = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + shiftColumns

	updated, err := scanShift(q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.Date, s.IsLeave, s.LeaveType,
		nullIfEmpty(s.Start), nullIfEmpty(s.End), s.BreakMin, s.TotalHours, s.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift %s: %w", s.ID, err)
	}
	return updated, nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM shifts WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift %s: %w", id, err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

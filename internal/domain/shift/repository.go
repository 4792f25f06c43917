package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// ListByRange returns shifts with start <= date < end.
	ListByRange(ctx context.Context, start, end time.Time) ([]Shift, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	Delete(ctx context.Context, id string) error
}

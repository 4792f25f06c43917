package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDIncludingDeleted resolves soft-deleted rows too, for
	// consumers that must keep serving an employee's history.
	GetByIDIncludingDeleted(ctx context.Context, id string) (Employee, error)
	// List returns non-deleted employees, optionally only active ones
	// (active-only is what new-shift pickers want).
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	// ListAll includes soft-deleted employees so historical reports can
	// still resolve every shift reference.
	ListAll(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	SoftDelete(ctx context.Context, id string) error
}

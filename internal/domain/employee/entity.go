package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	HourlyRate decimal.Decimal
	Active     bool
	Color      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// Placeholder is the snapshot resolved for shifts whose employee
// reference no longer exists in the store. It keeps historical views
// rendering instead of failing on an orphaned reference.
func Placeholder(id string) Employee {
	return Employee{
		ID:         id,
		FullName:   "Unknown employee",
		HourlyRate: decimal.Zero,
		Active:     false,
	}
}

package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/pkg/timeutil"
)

// SummaryRow is one employee's month: worked hours (leave excluded)
// and pay at the employee's flat hourly rate. Both values are rounded
// to 2 decimals after summation, never per record.
type SummaryRow struct {
	Employee   employee.Employee
	TotalHours float64
	TotalPay   decimal.Decimal
}

// Totals rolls the summary rows up across the shop.
type Totals struct {
	TotalHours        float64
	TotalPay          decimal.Decimal
	AverageHourlyRate decimal.Decimal
	EmployeeCount     int
}

// Summarize groups the month's records by employee and produces one
// row per roster employee, zero-hour rows included. Leave records
// never contribute hours or pay. Rows are sorted by hours descending;
// ties keep roster order. Records referencing an employee missing from
// the roster are skipped; their count is returned so the caller can
// surface a data-integrity warning without aborting the report.
//
// The function is pure: same inputs, bit-identical output.
func Summarize(shifts []shift.Shift, roster []employee.Employee) ([]SummaryRow, int) {
	byEmployee := make(map[string][]shift.Shift, len(roster))
	for _, s := range shifts {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	known := make(map[string]struct{}, len(roster))
	for _, e := range roster {
		known[e.ID] = struct{}{}
	}
	orphans := 0
	for _, s := range shifts {
		if _, ok := known[s.EmployeeID]; !ok {
			orphans++
		}
	}

	rows := make([]SummaryRow, 0, len(roster))
	for _, e := range roster {
		var sum float64
		for _, s := range byEmployee[e.ID] {
			if s.IsLeave {
				continue
			}
			sum += s.TotalHours
		}

		pay := e.HourlyRate.Mul(decimal.NewFromFloat(sum)).Round(2)
		rows = append(rows, SummaryRow{
			Employee:   e,
			TotalHours: timeutil.Round2(sum),
			TotalPay:   pay,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalHours > rows[j].TotalHours
	})

	return rows, orphans
}

// GrandTotal sums the already-rounded row values. It deliberately does
// not re-derive from raw records: the roll-up has to stay consistent
// with the displayed rows, even though that makes it a sum of rounded
// parts. The average rate is pay over hours, zero when no hours.
func GrandTotal(rows []SummaryRow) Totals {
	var hours float64
	pay := decimal.Zero
	count := 0

	for _, row := range rows {
		hours += row.TotalHours
		pay = pay.Add(row.TotalPay)
		if row.TotalHours > 0 {
			count++
		}
	}

	hours = timeutil.Round2(hours)

	avg := decimal.Zero
	if hours > 0 {
		avg = pay.Div(decimal.NewFromFloat(hours)).Round(2)
	}

	return Totals{
		TotalHours:        hours,
		TotalPay:          pay,
		AverageHourlyRate: avg,
		EmployeeCount:     count,
	}
}

package report

import (
	"github.com/shopspring/decimal"
	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodMonth int                  `json:"period_month"`
	PeriodYear  int                  `json:"period_year"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	GeneratedAt string               `json:"generated_at"`
	Rows        []SummaryRowResponse `json:"rows"`
	GrandTotal  TotalsResponse       `json:"grand_total"`
}

type SummaryRowResponse struct {
	Employee   employee.EmployeeResponse `json:"employee"`
	TotalHours float64                   `json:"total_hours"`
	TotalPay   decimal.Decimal           `json:"total_pay"`
}

// DashboardResponse is the owner's landing-page snapshot: who works
// today plus the cached month-to-date totals per employee.
type DashboardResponse struct {
	Date            string                `json:"date"`
	Period          string                `json:"period"`
	TodayShifts     []shift.ShiftResponse `json:"today_shifts"`
	Timesheets      []TimesheetSnapshot   `json:"timesheets"`
	ActiveEmployees int                   `json:"active_employees"`
}

type TimesheetSnapshot struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalHours   float64         `json:"total_hours"`
	TotalPay     decimal.Decimal `json:"total_pay"`
	LastUpdated  string          `json:"last_updated"`
}

type TotalsResponse struct {
	TotalHours        float64         `json:"total_hours"`
	TotalPay          decimal.Decimal `json:"total_pay"`
	AverageHourlyRate decimal.Decimal `json:"average_hourly_rate"`
	EmployeeCount     int             `json:"employee_count"`
}

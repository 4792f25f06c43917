package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/report"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/pkg/timeutil"
	timesheetService "github.com/ymerta/vardiya/internal/service/timesheet"
)

// Month names in the report language. time.Month is 1-based.
var monthNames = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

type ReportService struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	timesheets   timesheetService.Service
	loc          *time.Location
	shopName     string
}

func NewReportService(
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	timesheets timesheetService.Service,
	loc *time.Location,
	shopName string,
) *ReportService {
	return &ReportService{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		timesheets:   timesheets,
		loc:          loc,
		shopName:     shopName,
	}
}

// GetMonthlyReport recomputes the month from the source shift
// records. Timesheet snapshots are a dashboard cache and are never
// consulted here.
func (s *ReportService) GetMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	start, end := timeutil.MonthRange(req.Year, time.Month(req.Month), s.loc)

	shifts, err := s.shiftRepo.ListByRange(ctx, start, end)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	// Soft-deleted employees stay on the report roster so their past
	// months remain attributable.
	roster, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load roster: %w", err)
	}

	rows, orphans := report.Summarize(shifts, roster)
	if orphans > 0 {
		slog.Warn("monthly report skipped shifts with unknown employees",
			"year", req.Year, "month", req.Month, "count", orphans)
	}

	responses := make([]report.SummaryRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, report.SummaryRowResponse{
			Employee:   employee.NewEmployeeResponse(row.Employee),
			TotalHours: row.TotalHours,
			TotalPay:   row.TotalPay,
		})
	}

	totals := report.GrandTotal(rows)

	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   start.AddDate(0, 1, -1).Format("2006-01-02"),
		GeneratedAt: time.Now().In(s.loc).Format(time.RFC3339),
		Rows:        responses,
		GrandTotal: report.TotalsResponse{
			TotalHours:        totals.TotalHours,
			TotalPay:          totals.TotalPay,
			AverageHourlyRate: totals.AverageHourlyRate,
			EmployeeCount:     totals.EmployeeCount,
		},
	}, nil
}

// BuildMonthlyTable renders the month as the export table shared by
// the XLSX and PDF writers.
func (s *ReportService) BuildMonthlyTable(ctx context.Context, req report.MonthlyReportRequest) (report.Table, error) {
	if err := req.Validate(); err != nil {
		return report.Table{}, err
	}

	start, end := timeutil.MonthRange(req.Year, time.Month(req.Month), s.loc)

	shifts, err := s.shiftRepo.ListByRange(ctx, start, end)
	if err != nil {
		return report.Table{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	roster, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return report.Table{}, fmt.Errorf("failed to load roster: %w", err)
	}

	rows, orphans := report.Summarize(shifts, roster)
	if orphans > 0 {
		slog.Warn("monthly export skipped shifts with unknown employees",
			"year", req.Year, "month", req.Month, "count", orphans)
	}

	return report.BuildTable(rows, report.GrandTotal(rows), MonthLabel(req.Year, time.Month(req.Month)), s.shopName), nil
}

func (s *ReportService) GetDashboard(ctx context.Context) (report.DashboardResponse, error) {
	now := time.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	period := now.Format("2006-01")

	shifts, err := s.shiftRepo.ListByRange(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to load today's shifts: %w", err)
	}

	roster, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}
	names := make(map[string]string, len(roster))
	active := 0
	for _, e := range roster {
		names[e.ID] = e.FullName
		if e.Active && e.DeletedAt == nil {
			active++
		}
	}
	resolve := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return employee.Placeholder(id).FullName
	}

	todayShifts := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		todayShifts = append(todayShifts, toShiftResponse(sh, resolve(sh.EmployeeID), s.loc))
	}

	sheets, err := s.timesheets.GetByPeriod(ctx, period)
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to load timesheets: %w", err)
	}
	snapshots := make([]report.TimesheetSnapshot, 0, len(sheets))
	for _, t := range sheets {
		snapshots = append(snapshots, report.TimesheetSnapshot{
			EmployeeID:   t.EmployeeID,
			EmployeeName: resolve(t.EmployeeID),
			TotalHours:   t.TotalHours,
			TotalPay:     t.TotalPay,
			LastUpdated:  t.LastUpdated.In(s.loc).Format(time.RFC3339),
		})
	}

	return report.DashboardResponse{
		Date:            today.Format("2006-01-02"),
		Period:          period,
		TodayShifts:     todayShifts,
		Timesheets:      snapshots,
		ActiveEmployees: active,
	}, nil
}

// MonthLabel formats a period heading such as "Eylül 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

func toShiftResponse(sh shift.Shift, employeeName string, loc *time.Location) shift.ShiftResponse {
	var leaveType *string
	if sh.LeaveType != nil {
		lt := string(*sh.LeaveType)
		leaveType = &lt
	}
	return shift.ShiftResponse{
		ID:           sh.ID,
		EmployeeID:   sh.EmployeeID,
		EmployeeName: employeeName,
		Date:         sh.Date.In(loc).Format("2006-01-02"),
		IsLeave:      sh.IsLeave,
		LeaveType:    leaveType,
		Start:        sh.Start,
		End:          sh.End,
		BreakMin:     sh.BreakMin,
		TotalHours:   sh.TotalHours,
		Notes:        sh.Notes,
	}
}

package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/pkg/sse"
	"github.com/ymerta/vardiya/internal/pkg/timeutil"
	timesheetService "github.com/ymerta/vardiya/internal/service/timesheet"
)

type ShiftService struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	timesheets   timesheetService.Service
	hub          *sse.Hub
	loc          *time.Location
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	timesheets timesheetService.Service,
	hub *sse.Hub,
	loc *time.Location,
) *ShiftService {
	return &ShiftService{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		timesheets:   timesheets,
		hub:          hub,
		loc:          loc,
	}
}

func (s *ShiftService) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	entity, err := s.entityFromRequest(req)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, entity)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.refreshTimesheet(ctx, created.EmployeeID, created.Date)

	resp := s.toResponse(created, emp.FullName)
	s.hub.Publish(sse.Event{Event: "shift.created", Data: resp})
	return resp, nil
}

func (s *ShiftService) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return s.toResponse(sh, s.resolveName(ctx, sh.EmployeeID)), nil
}

func (s *ShiftService) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var start, end time.Time
	if filter.Date != nil {
		day, err := time.ParseInLocation("2006-01-02", *filter.Date, s.loc)
		if err != nil {
			return nil, shift.ErrInvalidDateFormat
		}
		start, end = day, day.AddDate(0, 0, 1)
	} else {
		start, end = timeutil.MonthRange(filter.Year, time.Month(filter.Month), s.loc)
	}

	var shifts []shift.Shift
	var err error
	if filter.EmployeeID != nil {
		shifts, err = s.shiftRepo.ListByEmployeeAndRange(ctx, *filter.EmployeeID, start, end)
	} else {
		shifts, err = s.shiftRepo.ListByRange(ctx, start, end)
	}
	if err != nil {
		return nil, err
	}

	names, err := s.nameIndex(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		name, ok := names[sh.EmployeeID]
		if !ok {
			name = employee.Placeholder(sh.EmployeeID).FullName
		}
		responses = append(responses, s.toResponse(sh, name))
	}
	return responses, nil
}

func (s *ShiftService) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	old, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	entity, err := s.entityFromRequest(req.CreateShiftRequest)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	entity.ID = req.ID

	updated, err := s.shiftRepo.Update(ctx, entity)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.refreshTimesheet(ctx, updated.EmployeeID, updated.Date)
	// Moving a shift across employees or months leaves a stale
	// snapshot behind; refresh the old side too.
	if old.EmployeeID != updated.EmployeeID || !sameMonth(old.Date, updated.Date, s.loc) {
		s.refreshTimesheet(ctx, old.EmployeeID, old.Date)
	}

	resp := s.toResponse(updated, emp.FullName)
	s.hub.Publish(sse.Event{Event: "shift.updated", Data: resp})
	return resp, nil
}

func (s *ShiftService) Delete(ctx context.Context, id string) error {
	old, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.refreshTimesheet(ctx, old.EmployeeID, old.Date)
	s.hub.Publish(sse.Event{Event: "shift.deleted", Data: map[string]string{"id": id}})
	return nil
}

// entityFromRequest normalizes the two variants: a leave record keeps
// no start/end/break and zero hours no matter what the payload
// carried; a work record gets its total hours derived here, at write
// time, never trusted from the client.
func (s *ShiftService) entityFromRequest(req shift.CreateShiftRequest) (shift.Shift, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	if err != nil {
		return shift.Shift{}, shift.ErrInvalidDateFormat
	}

	entity := shift.Shift{
		EmployeeID: req.EmployeeID,
		Date:       date,
		IsLeave:    req.IsLeave,
		Notes:      req.Notes,
	}

	if req.IsLeave {
		lt := shift.LeaveType(req.LeaveType)
		entity.LeaveType = &lt
		return entity, nil
	}

	entity.Start = req.Start
	entity.End = req.End
	entity.BreakMin = req.BreakMin
	entity.TotalHours = timeutil.HoursWorked(req.Start, req.End, req.BreakMin)
	return entity, nil
}

// refreshTimesheet keeps the dashboard snapshot in step with shift
// writes. Snapshot failures are logged, not surfaced: the write
// already succeeded and the reconcile job repairs drift.
func (s *ShiftService) refreshTimesheet(ctx context.Context, employeeID string, date time.Time) {
	if err := s.timesheets.Refresh(ctx, employeeID, date); err != nil {
		slog.Warn("timesheet refresh failed", "employee_id", employeeID, "error", err)
	}
}

func (s *ShiftService) resolveName(ctx context.Context, employeeID string) string {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Placeholder(employeeID).FullName
	}
	return emp.FullName
}

func (s *ShiftService) nameIndex(ctx context.Context) (map[string]string, error) {
	all, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	names := make(map[string]string, len(all))
	for _, e := range all {
		names[e.ID] = e.FullName
	}
	return names, nil
}

func (s *ShiftService) toResponse(sh shift.Shift, employeeName string) shift.ShiftResponse {
	var leaveType *string
	if sh.LeaveType != nil {
		lt := string(*sh.LeaveType)
		leaveType = &lt
	}
	return shift.ShiftResponse{
		ID:           sh.ID,
		EmployeeID:   sh.EmployeeID,
		EmployeeName: employeeName,
		Date:         sh.Date.In(s.loc).Format("2006-01-02"),
		IsLeave:      sh.IsLeave,
		LeaveType:    leaveType,
		Start:        sh.Start,
		End:          sh.End,
		BreakMin:     sh.BreakMin,
		TotalHours:   sh.TotalHours,
		Notes:        sh.Notes,
	}
}

func sameMonth(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month()
}

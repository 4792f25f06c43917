package shift

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/domain/timesheet"
	"github.com/ymerta/vardiya/internal/pkg/sse"
)

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (r *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	s.ID = uuid.New().String()
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *fakeShiftRepo) ListByRange(_ context.Context, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	all, _ := r.ListByRange(ctx, start, end)
	var out []shift.Shift
	for _, s := range all {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) Update(_ context.Context, s shift.Shift) (shift.Shift, error) {
	if _, ok := r.shifts[s.ID]; !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(r.shifts, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok || e.DeletedAt != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByIDIncludingDeleted(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	return r.listAll(), nil
}

func (r *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return r.listAll(), nil
}

func (r *fakeEmployeeRepo) listAll() []employee.Employee {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out
}

func (r *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return r.employees[req.ID], nil
}

func (r *fakeEmployeeRepo) SoftDelete(_ context.Context, _ string) error {
	return nil
}

// fakeTimesheets records refresh calls so tests can assert which
// employee-month snapshots a write touched.
type fakeTimesheets struct {
	refreshed []string
	loc       *time.Location
}

func (f *fakeTimesheets) Refresh(_ context.Context, employeeID string, monthOf time.Time) error {
	f.refreshed = append(f.refreshed, employeeID+"/"+monthOf.In(f.loc).Format("2006-01"))
	return nil
}

func (f *fakeTimesheets) ReconcileMonth(_ context.Context, _ time.Time) error { return nil }

func (f *fakeTimesheets) GetByPeriod(_ context.Context, _ string) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func testEmployee(name string) employee.Employee {
	return employee.Employee{
		ID:         uuid.New().String(),
		FullName:   name,
		HourlyRate: decimal.NewFromInt(150),
		Active:     true,
	}
}

func newTestService(t *testing.T, emps ...employee.Employee) (*ShiftService, *fakeShiftRepo, *fakeTimesheets) {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	shiftRepo := newFakeShiftRepo()
	ts := &fakeTimesheets{loc: loc}
	svc := NewShiftService(shiftRepo, newFakeEmployeeRepo(emps...), ts, sse.NewHub(), loc)
	return svc, shiftRepo, ts
}

func TestCreateComputesHoursServerSide(t *testing.T) {
	emp := testEmployee("Ayşe Yılmaz")
	svc, _, ts := newTestService(t, emp)

	resp, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: emp.ID,
		Date:       "2025-09-01",
		Start:      "21:00",
		End:        "05:00",
		BreakMin:   30,
	})
	require.NoError(t, err)

	assert.Equal(t, 7.5, resp.TotalHours)
	assert.Equal(t, "Ayşe Yılmaz", resp.EmployeeName)
	assert.Equal(t, []string{emp.ID + "/2025-09"}, ts.refreshed)
}

func TestCreateLeaveDiscardsWorkFields(t *testing.T) {
	emp := testEmployee("Fatma Kaya")
	svc, repo, _ := newTestService(t, emp)

	resp, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: emp.ID,
		Date:       "2025-09-02",
		IsLeave:    true,
		LeaveType:  "annual",
		// Stray work fields on a leave payload must not survive.
		Start:    "09:00",
		End:      "17:00",
		BreakMin: 60,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsLeave)
	require.NotNil(t, resp.LeaveType)
	assert.Equal(t, "annual", *resp.LeaveType)
	assert.Empty(t, resp.Start)
	assert.Empty(t, resp.End)
	assert.Zero(t, resp.BreakMin)
	assert.Zero(t, resp.TotalHours)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Start)
	assert.Zero(t, stored.TotalHours)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _, ts := newTestService(t)

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: uuid.New().String(),
		Date:       "2025-09-01",
		Start:      "09:00",
		End:        "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, ts.refreshed)
}

func TestCreateRejectsInvalidLeaveType(t *testing.T) {
	emp := testEmployee("Ali Şahin")
	svc, _, _ := newTestService(t, emp)

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: emp.ID,
		Date:       "2025-09-01",
		IsLeave:    true,
		LeaveType:  "vacation",
	})
	assert.Error(t, err)
}

func TestUpdateAcrossMonthsRefreshesBothSnapshots(t *testing.T) {
	emp := testEmployee("Ayşe Yılmaz")
	svc, _, ts := newTestService(t, emp)

	created, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: emp.ID,
		Date:       "2025-09-30",
		Start:      "10:00",
		End:        "20:00",
		BreakMin:   60,
	})
	require.NoError(t, err)
	ts.refreshed = nil

	_, err = svc.Update(context.Background(), shift.UpdateShiftRequest{
		ID: created.ID,
		CreateShiftRequest: shift.CreateShiftRequest{
			EmployeeID: emp.ID,
			Date:       "2025-10-01",
			Start:      "10:00",
			End:        "20:00",
			BreakMin:   60,
		},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{emp.ID + "/2025-10", emp.ID + "/2025-09"},
		ts.refreshed,
	)
}

func TestDeleteRefreshesSnapshot(t *testing.T) {
	emp := testEmployee("Fatma Kaya")
	svc, repo, ts := newTestService(t, emp)

	created, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: emp.ID,
		Date:       "2025-09-05",
		Start:      "09:00",
		End:        "17:00",
	})
	require.NoError(t, err)
	ts.refreshed = nil

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	assert.Equal(t, []string{emp.ID + "/2025-09"}, ts.refreshed)
}

func TestListResolvesOrphanToPlaceholder(t *testing.T) {
	emp := testEmployee("Ayşe Yılmaz")
	svc, repo, _ := newTestService(t, emp)

	orphanID := uuid.New().String()
	_, err := repo.Create(context.Background(), shift.Shift{
		EmployeeID: orphanID,
		Date:       time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC),
		Start:      "09:00",
		End:        "17:00",
		TotalHours: 8,
	})
	require.NoError(t, err)

	responses, err := svc.List(context.Background(), shift.ShiftFilter{Year: 2025, Month: 9})
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Unknown employee", responses[0].EmployeeName)
}

func TestListByDayExcludesNeighbours(t *testing.T) {
	emp := testEmployee("Ali Şahin")
	svc, _, _ := newTestService(t, emp)

	for _, date := range []string{"2025-09-04", "2025-09-05", "2025-09-06"} {
		_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
			EmployeeID: emp.ID,
			Date:       date,
			Start:      "09:00",
			End:        "17:00",
		})
		require.NoError(t, err)
	}

	day := "2025-09-05"
	responses, err := svc.List(context.Background(), shift.ShiftFilter{Date: &day})
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "2025-09-05", responses[0].Date)
}

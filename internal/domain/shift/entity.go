package shift

import "time"

// Shift is either a work record (start/end/break with derived total
// hours) or a leave record (leave type, zero hours). The two variants
// are mutually exclusive and discriminated by IsLeave.
type Shift struct {
	ID         string
	EmployeeID string
	// Date is a calendar date normalized to the shop's local timezone.
	Date       time.Time
	IsLeave    bool
	LeaveType  *LeaveType
	Start      string
	End        string
	BreakMin   int
	TotalHours float64
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type LeaveType string

const (
	LeaveTypeAnnual  LeaveType = "annual"
	LeaveTypeUnpaid  LeaveType = "unpaid"
	LeaveTypeWeekly  LeaveType = "weekly"
	LeaveTypeExcuse  LeaveType = "excuse"
	LeaveTypeMedical LeaveType = "medical"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeUnpaid),
	string(LeaveTypeWeekly),
	string(LeaveTypeExcuse),
	string(LeaveTypeMedical),
}

package model

// Leave request statuses and types.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"

	LeaveTypeSick      = "sick"
	LeaveTypeVacation  = "vacation"
	LeaveTypePersonal  = "personal"
	LeaveTypeEmergency = "emergency"
)

// LeaveRequest is one leave request, as the HR view sees it. The per-employee
// views omit the employee fields.
type LeaveRequest struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id,omitempty"`
	EmployeeName       string  `json:"employee_name,omitempty"`
	EmployeeDepartment string  `json:"employee_department,omitempty"`
	LeaveType          string  `json:"leave_type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Days               int     `json:"days,omitempty"`
	Reason             string  `json:"reason"`
	Status             string  `json:"status"`
	SubmittedAt        string  `json:"submitted_at,omitempty"`
	ReviewedAt         *string `json:"reviewed_at,omitempty"`
	ReviewedBy         *string `json:"reviewed_by,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

// LeaveSummary aggregates all leave requests by status.
type LeaveSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// LeaveRequestList is the leave-requests endpoint's data payload: a page of
// requests plus the global summary.
type LeaveRequestList struct {
	LeaveRequests []LeaveRequest `json:"leave_requests"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
	TotalPages    int            `json:"total_pages"`
	Summary       LeaveSummary   `json:"summary"`
}

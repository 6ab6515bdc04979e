package model

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceOnLeave = "on_leave"
)

// AttendanceRecord is one day's attendance for one employee. The employee
// fields are only populated on the HR-wide views.
type AttendanceRecord struct {
	ID                 string   `json:"id"`
	EmployeeID         string   `json:"employee_id,omitempty"`
	EmployeeName       string   `json:"employee_name,omitempty"`
	EmployeeDepartment string   `json:"employee_department,omitempty"`
	Date               string   `json:"date"`
	CheckIn            *string  `json:"check_in"`
	CheckOut           *string  `json:"check_out"`
	HoursWorked        *float64 `json:"hours_worked"`
	Status             string   `json:"status"`
	Notes              *string  `json:"notes,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

// AttendanceSummary aggregates a set of attendance records.
type AttendanceSummary struct {
	Month          string  `json:"month,omitempty"`
	TotalDays      int     `json:"total_days,omitempty"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	OnLeave        int     `json:"on_leave"`
	TotalHours     float64 `json:"total_hours,omitempty"`
	AttendanceRate float64 `json:"attendance_rate"`
}

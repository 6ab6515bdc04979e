package model

// Analytics is the HR analytics payload over a date range.
type Analytics struct {
	AttendanceTrends        []DailyRate       `json:"attendance_trends"`
	DepartmentComparison    []DepartmentRate  `json:"department_comparison"`
	TopPerformers           []PerformerStat   `json:"top_performers"`
	AttendanceIssues        []AttendanceIssue `json:"attendance_issues"`
	LeavePatterns           map[string]int    `json:"leave_patterns"`
	AverageHoursPerEmployee float64           `json:"average_hours_per_employee"`
	PeakHours               PeakHours         `json:"peak_hours"`
}

// DailyRate is one day's attendance rate.
type DailyRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// DepartmentRate is one department's attendance rate over the range.
type DepartmentRate struct {
	Department     string  `json:"department"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// PerformerStat is one employee's attendance performance.
type PerformerStat struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	AttendanceRate float64 `json:"attendance_rate"`
	TotalDays      int     `json:"total_days"`
}

// AttendanceIssue flags an employee whose attendance fell below threshold.
type AttendanceIssue struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	AbsentDays int    `json:"absent_days"`
	LateDays   int    `json:"late_days"`
}

// PeakHours is the most common check-in and check-out times.
type PeakHours struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

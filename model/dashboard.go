package model

// DashboardStats is the HR dashboard payload.
type DashboardStats struct {
	TotalEmployees         int              `json:"total_employees"`
	ActiveEmployees        int              `json:"active_employees"`
	InactiveEmployees      int              `json:"inactive_employees"`
	TodayAttendance        TodayAttendance  `json:"today_attendance"`
	PendingLeaveRequests   int              `json:"pending_leave_requests"`
	ApprovedLeavesToday    int              `json:"approved_leaves_today"`
	Departments            map[string]int   `json:"departments"`
	MonthlyAttendanceTrend []MonthlyRate    `json:"monthly_attendance_trend"`
	MonthlyAttendanceAvg   float64          `json:"monthly_attendance_avg"`
	RecentActivities       []ActivityRecord `json:"recent_activities"`
}

// TodayAttendance is the company-wide attendance breakdown for today.
type TodayAttendance struct {
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	OnLeave        int     `json:"on_leave"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// MonthlyRate is one month's attendance rate, e.g. {"Jan 2026", 94.2}.
type MonthlyRate struct {
	Month string  `json:"month"`
	Rate  float64 `json:"rate"`
}

// ActivityRecord is one entry in an activity feed. The dashboard feed fills
// Description; the recent-activity feed fills Message plus the relative Time.
type ActivityRecord struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Description  string `json:"description,omitempty"`
	Message      string `json:"message,omitempty"`
	Time         string `json:"time,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}

// EmployeeDashboard is the employee dashboard payload.
type EmployeeDashboard struct {
	User                DashboardUser      `json:"user"`
	TodayAttendance     CheckState         `json:"today_attendance"`
	PerformanceMetrics  PerformanceMetrics `json:"performance_metrics"`
	TodaySchedule       []ScheduleItem     `json:"today_schedule"`
	RecentAnnouncements []Announcement     `json:"recent_announcements"`
	PendingTasks        int                `json:"pending_tasks"`
	AttendanceSummary   AttendanceSummary  `json:"attendance_summary"`
}

// DashboardUser is the condensed profile shown on the employee dashboard.
type DashboardUser struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// CheckState is today's check-in/check-out status for one employee.
type CheckState struct {
	CheckedIn    bool    `json:"checked_in"`
	CheckInTime  *string `json:"check_in_time"`
	CheckedOut   bool    `json:"checked_out"`
	CheckOutTime *string `json:"check_out_time"`
}

// PerformanceMetrics is the employee's current-month performance snapshot.
type PerformanceMetrics struct {
	TasksCompleted    int `json:"tasks_completed"`
	ProductivityScore int `json:"productivity_score"`
	GoalsAchieved     int `json:"goals_achieved"`
}

// ScheduleItem is one entry of the employee's schedule for today.
type ScheduleItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// Package hr implements the HR-administrator operations: employee records,
// company-wide attendance, analytics, notifications and leave approvals.
// Every call requires an HR Administrator session; the backend enforces the
// role and responds 403 otherwise.
package hr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/model"
)

// Service performs HR operations through an authenticated client.
type Service struct {
	client *client.Client
	logger zerolog.Logger
}

// NewService creates an HR Service.
func NewService(apiClient *client.Client, logger zerolog.Logger) *Service {
	return &Service{client: apiClient, logger: logger}
}

// EmployeeListParams filter and page the employee list. Zero values are
// omitted and the backend's defaults apply.
type EmployeeListParams struct {
	Page       int
	PageSize   int
	Search     string
	Department string
	Status     string
	SortBy     string
	SortOrder  string
}

func (p EmployeeListParams) values() url.Values {
	values := url.Values{}
	setInt(values, "page", p.Page)
	setInt(values, "page_size", p.PageSize)
	setString(values, "search", p.Search)
	setString(values, "department", p.Department)
	setString(values, "status", p.Status)
	setString(values, "sort_by", p.SortBy)
	setString(values, "sort_order", p.SortOrder)
	return values
}

// Employees lists employees, paginated.
func (s *Service) Employees(ctx context.Context, params EmployeeListParams) (*client.Page[model.Employee], error) {
	var page client.Page[model.Employee]
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/employees",
		Query:  params.values(),
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("[Service.Employees] %w", err)
	}
	return &page, nil
}

// NewEmployee is the payload for creating an employee record plus its login
// account.
type NewEmployee struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	HireDate   string   `json:"hire_date"`
	Salary     *float64 `json:"salary,omitempty"`
	Password   string   `json:"password"`
}

// AddEmployee creates an employee.
func (s *Service) AddEmployee(ctx context.Context, input NewEmployee) (*model.Employee, error) {
	var created model.Employee
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/hr/employees",
		Body:   input,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("[Service.AddEmployee] %w", err)
	}
	s.logger.Info().Str("employee_id", created.EmployeeID).Msg("employee created")
	return &created, nil
}

// EmployeeUpdate carries the fields to change; nil fields are left alone.
type EmployeeUpdate struct {
	Name             *string  `json:"name,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Department       *string  `json:"department,omitempty"`
	Position         *string  `json:"position,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
	Status           *string  `json:"status,omitempty"`
	PerformanceScore *float64 `json:"performance_score,omitempty"`
}

// UpdateEmployee applies a partial update to an employee record.
func (s *Service) UpdateEmployee(ctx context.Context, employeeID string, update EmployeeUpdate) (*model.Employee, error) {
	var updated model.Employee
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/hr/employees/" + employeeID,
		Body:   update,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("[Service.UpdateEmployee] %w", err)
	}
	return &updated, nil
}

// DeleteEmployee deactivates an employee. The record survives as inactive;
// there is no hard delete.
func (s *Service) DeleteEmployee(ctx context.Context, employeeID string) error {
	_, err := s.client.Do(ctx, client.Request{
		Method: http.MethodDelete,
		Path:   "/hr/employees/" + employeeID,
	})
	if err != nil {
		return fmt.Errorf("[Service.DeleteEmployee] %w", err)
	}
	return nil
}

// AttendanceParams filter and page the company-wide attendance view.
type AttendanceParams struct {
	Page       int
	PageSize   int
	EmployeeID string
	Department string
	StartDate  string
	EndDate    string
}

func (p AttendanceParams) values() url.Values {
	values := url.Values{}
	setInt(values, "page", p.Page)
	setInt(values, "page_size", p.PageSize)
	setString(values, "employee_id", p.EmployeeID)
	setString(values, "department", p.Department)
	setString(values, "start_date", p.StartDate)
	setString(values, "end_date", p.EndDate)
	return values
}

// Attendance lists attendance records across all employees, paginated.
func (s *Service) Attendance(ctx context.Context, params AttendanceParams) (*client.Page[model.AttendanceRecord], error) {
	var page client.Page[model.AttendanceRecord]
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/attendance",
		Query:  params.values(),
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("[Service.Attendance] %w", err)
	}
	return &page, nil
}

// ManualAttendance is the payload for marking attendance on an employee's
// behalf.
type ManualAttendance struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// MarkAttendance records attendance manually for an employee.
func (s *Service) MarkAttendance(ctx context.Context, input ManualAttendance) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/hr/attendance/mark",
		Body:   input,
	}, &record)
	if err != nil {
		return nil, fmt.Errorf("[Service.MarkAttendance] %w", err)
	}
	return &record, nil
}

// DashboardStats fetches the HR dashboard aggregates.
func (s *Service) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/dashboard/stats",
	}, &stats)
	if err != nil {
		return nil, fmt.Errorf("[Service.DashboardStats] %w", err)
	}
	return &stats, nil
}

// AnalyticsParams scope the analytics report. Empty dates default to the
// last 30 days on the backend.
type AnalyticsParams struct {
	StartDate  string
	EndDate    string
	Department string
}

// Analytics fetches the attendance analytics report.
func (s *Service) Analytics(ctx context.Context, params AnalyticsParams) (*model.Analytics, error) {
	values := url.Values{}
	setString(values, "start_date", params.StartDate)
	setString(values, "end_date", params.EndDate)
	setString(values, "department", params.Department)

	var analytics model.Analytics
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/analytics",
		Query:  values,
	}, &analytics)
	if err != nil {
		return nil, fmt.Errorf("[Service.Analytics] %w", err)
	}
	return &analytics, nil
}

// RecentActivity returns the latest system events, newest first.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]model.ActivityRecord, error) {
	values := url.Values{}
	setInt(values, "limit", limit)

	var payload struct {
		Activities []model.ActivityRecord `json:"activities"`
	}
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/recent-activity",
		Query:  values,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("[Service.RecentActivity] %w", err)
	}
	return payload.Activities, nil
}

func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setInt(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}

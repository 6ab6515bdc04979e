// Package employee implements the self-service operations available to every
// signed-in user: personal dashboard, attendance, tasks, documents,
// announcements, notifications and leave requests.
package employee

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/model"
)

// Service performs employee self-service operations through an authenticated
// client.
type Service struct {
	client *client.Client
	logger zerolog.Logger
}

// NewService creates an employee Service.
func NewService(apiClient *client.Client, logger zerolog.Logger) *Service {
	return &Service{client: apiClient, logger: logger}
}

// Dashboard fetches the personal dashboard.
func (s *Service) Dashboard(ctx context.Context) (*model.EmployeeDashboard, error) {
	var dashboard model.EmployeeDashboard
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/dashboard",
	}, &dashboard)
	if err != nil {
		return nil, fmt.Errorf("[Service.Dashboard] %w", err)
	}
	return &dashboard, nil
}

// AttendanceHistory is the personal attendance payload: the records in range
// plus their aggregate.
type AttendanceHistory struct {
	Records []model.AttendanceRecord `json:"records"`
	Summary model.AttendanceSummary  `json:"summary"`
}

// Attendance returns the personal attendance history. Empty dates default to
// the current month on the backend.
func (s *Service) Attendance(ctx context.Context, startDate, endDate string) (*AttendanceHistory, error) {
	values := url.Values{}
	setString(values, "start_date", startDate)
	setString(values, "end_date", endDate)

	var history AttendanceHistory
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/attendance",
		Query:  values,
	}, &history)
	if err != nil {
		return nil, fmt.Errorf("[Service.Attendance] %w", err)
	}
	return &history, nil
}

// CheckIn marks today's arrival. Checking in twice is a 400.
func (s *Service) CheckIn(ctx context.Context) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/employee/attendance/checkin",
	}, &record)
	if err != nil {
		return nil, fmt.Errorf("[Service.CheckIn] %w", err)
	}
	s.logger.Info().Msg("checked in")
	return &record, nil
}

// CheckOut marks today's departure and closes the day's hours.
func (s *Service) CheckOut(ctx context.Context) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/employee/attendance/checkout",
	}, &record)
	if err != nil {
		return nil, fmt.Errorf("[Service.CheckOut] %w", err)
	}
	s.logger.Info().Msg("checked out")
	return &record, nil
}

// TaskListParams filter and sort the personal task list.
type TaskListParams struct {
	Status   string
	Priority string
	SortBy   string
}

// TaskList is the tasks payload: the filtered tasks plus the overall summary.
type TaskList struct {
	Tasks   []model.Task      `json:"tasks"`
	Summary model.TaskSummary `json:"summary"`
}

// Tasks returns the personal task list.
func (s *Service) Tasks(ctx context.Context, params TaskListParams) (*TaskList, error) {
	values := url.Values{}
	setString(values, "status", params.Status)
	setString(values, "priority", params.Priority)
	setString(values, "sort_by", params.SortBy)

	var list TaskList
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/tasks",
		Query:  values,
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("[Service.Tasks] %w", err)
	}
	return &list, nil
}

// NewTask is the payload for a self-assigned task.
type NewTask struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
}

// CreateTask creates a personal task.
func (s *Service) CreateTask(ctx context.Context, input NewTask) (*model.Task, error) {
	var created model.Task
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/employee/tasks",
		Body:   input,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("[Service.CreateTask] %w", err)
	}
	return &created, nil
}

// TaskUpdate carries the task fields to change; nil fields are left alone.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// UpdateTask applies a partial update to a personal task.
func (s *Service) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (*model.Task, error) {
	var updated model.Task
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/employee/tasks/" + taskID,
		Body:   update,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("[Service.UpdateTask] %w", err)
	}
	return &updated, nil
}

// DocumentList is the documents payload.
type DocumentList struct {
	Documents []model.Document `json:"documents"`
	Total     int              `json:"total"`
}

// Documents lists personal documents, optionally filtered by category or a
// title search.
func (s *Service) Documents(ctx context.Context, category, search string) (*DocumentList, error) {
	values := url.Values{}
	setString(values, "category", category)
	setString(values, "search", search)

	var list DocumentList
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/documents",
		Query:  values,
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("[Service.Documents] %w", err)
	}
	return &list, nil
}

// DocumentUpload describes a file to upload with its metadata.
type DocumentUpload struct {
	Title    string
	Category string
	FileName string
	Content  io.Reader
}

// UploadDocument uploads a document as multipart form data.
func (s *Service) UploadDocument(ctx context.Context, upload DocumentUpload) (*model.Document, error) {
	request, err := client.NewMultipartRequest("/employee/documents",
		map[string]string{
			"title":    upload.Title,
			"category": upload.Category,
		},
		client.MultipartFile{Field: "file", Name: upload.FileName, Content: upload.Content},
	)
	if err != nil {
		return nil, fmt.Errorf("[Service.UploadDocument] %w", err)
	}

	var created model.Document
	if err := s.client.DoDecoded(ctx, request, &created); err != nil {
		return nil, fmt.Errorf("[Service.UploadDocument] %w", err)
	}
	s.logger.Info().Str("file", upload.FileName).Msg("document uploaded")
	return &created, nil
}

// Announcements lists company announcements, paginated, newest first.
func (s *Service) Announcements(ctx context.Context, page, pageSize int) (*client.Page[model.Announcement], error) {
	values := url.Values{}
	setInt(values, "page", page)
	setInt(values, "page_size", pageSize)

	var result client.Page[model.Announcement]
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/announcements",
		Query:  values,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("[Service.Announcements] %w", err)
	}
	return &result, nil
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

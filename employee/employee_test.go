package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/employee"
	"github.com/staffsync/go-staffsync/internal/utils"
	"github.com/staffsync/go-staffsync/session"
	"github.com/staffsync/go-staffsync/session/storefakes"
)

func newService(t *testing.T, handler http.Handler) *employee.Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storefakes.NewFakeSessionStore()
	store.Seed(session.Session{
		AccessToken:  "A1",
		RefreshToken: "R1",
		User:         &session.UserProfile{ID: "u2", Role: session.RoleEmployee},
	})

	apiClient, err := client.New(client.Config{BaseURL: server.URL, Store: store})
	require.NoError(t, err)

	return employee.NewService(apiClient, zerolog.Nop())
}

func TestService_Dashboard(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employee/dashboard", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": {
				"user": {"name": "John Roe", "role": "Engineer", "department": "Engineering"},
				"today_attendance": {"checked_in": true, "check_in_time": "09:02:11", "checked_out": false, "check_out_time": null},
				"performance_metrics": {"tasks_completed": 7, "productivity_score": 82, "goals_achieved": 1},
				"today_schedule": [{"id": "t1", "type": "task", "title": "Ship release", "priority": "high", "status": "in-progress"}],
				"recent_announcements": [{"id": "a1", "title": "All hands", "content": "Friday 4pm", "priority": "medium", "created_at": "2026-08-30T15:00:00"}],
				"pending_tasks": 3,
				"attendance_summary": {"month": "August 2026", "present": 19, "absent": 1, "late": 1, "on_leave": 0, "attendance_rate": 95.2}
			}
		}`))
	}))

	dashboard, err := service.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, "John Roe", dashboard.User.Name)
	require.True(t, dashboard.TodayAttendance.CheckedIn)
	require.False(t, dashboard.TodayAttendance.CheckedOut)
	require.Equal(t, 82, dashboard.PerformanceMetrics.ProductivityScore)
	require.Len(t, dashboard.TodaySchedule, 1)
	require.Equal(t, 3, dashboard.PendingTasks)
	require.Equal(t, 95.2, dashboard.AttendanceSummary.AttendanceRate)
}

func TestService_Attendance(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2026-08-01", r.URL.Query().Get("start_date"))
		w.Write([]byte(`{
			"success": true,
			"data": {
				"records": [{"id": "r1", "date": "2026-08-28", "check_in": "09:00:00", "check_out": "17:45:00", "hours_worked": 8.75, "status": "present"}],
				"summary": {"total_days": 20, "present": 19, "absent": 0, "late": 1, "on_leave": 0, "total_hours": 158.5, "attendance_rate": 100.0}
			}
		}`))
	}))

	history, err := service.Attendance(context.Background(), "2026-08-01", "")
	require.NoError(t, err)
	require.Len(t, history.Records, 1)
	require.Equal(t, 8.75, *history.Records[0].HoursWorked)
	require.Equal(t, 158.5, history.Summary.TotalHours)
}

func TestService_CheckInAndOut(t *testing.T) {
	t.Run("check in", func(t *testing.T) {
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/employee/attendance/checkin", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"r1","date":"2026-08-31","check_in":"09:02:11","status":"present"},"message":"Checked in successfully"}`))
		}))

		record, err := service.CheckIn(context.Background())
		require.NoError(t, err)
		require.Equal(t, "09:02:11", *record.CheckIn)
	})

	t.Run("double check-in surfaces the backend message", func(t *testing.T) {
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Already checked in today"}`))
		}))

		_, err := service.CheckIn(context.Background())
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Already checked in today", apiErr.Message())
	})

	t.Run("check out closes the day", func(t *testing.T) {
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/employee/attendance/checkout", r.URL.Path)
			w.Write([]byte(`{"success":true,"data":{"id":"r1","date":"2026-08-31","check_in":"09:02:11","check_out":"17:40:00","hours_worked":8.63,"status":"present"}}`))
		}))

		record, err := service.CheckOut(context.Background())
		require.NoError(t, err)
		require.Equal(t, 8.63, *record.HoursWorked)
	})
}

func TestService_Tasks(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "pending", r.URL.Query().Get("status"))
		require.Equal(t, "priority", r.URL.Query().Get("sort_by"))
		w.Write([]byte(`{
			"success": true,
			"data": {
				"tasks": [{"id": "t1", "title": "Ship release", "status": "pending", "priority": "high", "due_date": "2026-09-01", "created_at": "2026-08-25T10:00:00", "assigned_by": "Self"}],
				"summary": {"total": 5, "pending": 2, "in_progress": 1, "completed": 2, "overdue": 1}
			}
		}`))
	}))

	list, err := service.Tasks(context.Background(), employee.TaskListParams{Status: "pending", SortBy: "priority"})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	require.Equal(t, 5, list.Summary.Total)
	require.Equal(t, 1, list.Summary.Overdue)
}

func TestService_CreateAndUpdateTask(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		var gotBody map[string]any
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"t2","title":"Write report","status":"pending","priority":"medium","due_date":"2026-09-05"}}`))
		}))

		created, err := service.CreateTask(context.Background(), employee.NewTask{
			Title:    "Write report",
			Priority: "medium",
			DueDate:  "2026-09-05",
		})
		require.NoError(t, err)
		require.Equal(t, "t2", created.ID)
		_, hasDescription := gotBody["description"]
		require.False(t, hasDescription)
	})

	t.Run("partial update sends only set fields", func(t *testing.T) {
		var gotBody map[string]any
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/employee/tasks/t1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{"success":true,"data":{"id":"t1","title":"Ship release","status":"completed","priority":"high","due_date":"2026-09-01"}}`))
		}))

		updated, err := service.UpdateTask(context.Background(), "t1", employee.TaskUpdate{
			Status: utils.Ptr("completed"),
		})
		require.NoError(t, err)
		require.Equal(t, "completed", updated.Status)
		require.Equal(t, map[string]any{"status": "completed"}, gotBody)
	})
}

func TestService_Documents(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "contract", r.URL.Query().Get("category"))
		w.Write([]byte(`{
			"success": true,
			"data": {
				"documents": [{"id": "d1", "title": "Employment Contract", "category": "contract", "file_name": "contract.pdf", "file_size": 24576, "file_url": "/uploads/documents/contract.pdf", "uploaded_by": "Sarah Mitchell", "uploaded_at": "2026-08-01T12:00:00"}],
				"total": 1
			}
		}`))
	}))

	list, err := service.Documents(context.Background(), "contract", "")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "contract.pdf", list.Documents[0].FileName)
}

func TestService_UploadDocument(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer A1", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Q3 Report", r.MultipartForm.Value["title"][0])
		require.Equal(t, "report", r.MultipartForm.Value["category"][0])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "q3.pdf", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"d2","title":"Q3 Report","category":"report","file_name":"q3.pdf","file_size":8,"file_url":"/uploads/documents/q3.pdf","uploaded_by":"John Roe","uploaded_at":"2026-08-31T13:00:00"}}`))
	}))

	created, err := service.UploadDocument(context.Background(), employee.DocumentUpload{
		Title:    "Q3 Report",
		Category: "report",
		FileName: "q3.pdf",
		Content:  strings.NewReader("%PDF-1.4"),
	})
	require.NoError(t, err)
	require.Equal(t, "d2", created.ID)
}

func TestService_Announcements(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employee/announcements", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": {
				"items": [{"id": "a1", "title": "All hands", "content": "Friday 4pm in the big room.", "priority": "medium", "created_at": "2026-08-30T15:00:00"}],
				"total": 1, "page": 1, "page_size": 10, "total_pages": 1
			}
		}`))
	}))

	page, err := service.Announcements(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "All hands", page.Items[0].Title)
}

func TestService_Notifications(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("unread_only"))
		w.Write([]byte(`{
			"success": true,
			"data": {
				"notifications": [{"id": "n1", "sender_id": "u1", "sender_name": "Sarah Mitchell", "title": "Office closed Friday", "message": "Maintenance.", "type": "warning", "is_read": false, "created_at": "2026-08-31T12:00:00", "read_at": null}],
				"total": 1,
				"unread_count": 1
			}
		}`))
	}))

	inbox, err := service.Notifications(context.Background(), true, 10)
	require.NoError(t, err)
	require.Equal(t, 1, inbox.UnreadCount)
	require.Equal(t, "warning", inbox.Notifications[0].Type)
}

func TestService_MarkNotificationsRead(t *testing.T) {
	var paths []string
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"Notification marked as read"}`))
	}))

	require.NoError(t, service.MarkNotificationRead(context.Background(), "n1"))
	require.NoError(t, service.MarkAllNotificationsRead(context.Background()))
	require.Equal(t, []string{"/employee/notifications/n1/read", "/employee/notifications/read-all"}, paths)
}

func TestService_LeaveRequests(t *testing.T) {
	t.Run("submit", func(t *testing.T) {
		var gotBody employee.LeaveRequestInput
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/employee/leave-requests", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"l2","leave_type":"sick","start_date":"2026-09-01","end_date":"2026-09-02","days":2,"reason":"Caught the office cold","status":"pending"}}`))
		}))

		created, err := service.SubmitLeaveRequest(context.Background(), employee.LeaveRequestInput{
			LeaveType: "sick",
			StartDate: "2026-09-01",
			EndDate:   "2026-09-02",
			Reason:    "Caught the office cold",
		})
		require.NoError(t, err)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, 2, created.Days)
		require.Equal(t, "sick", gotBody.LeaveType)
	})

	t.Run("list own requests", func(t *testing.T) {
		service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "pending", r.URL.Query().Get("status"))
			w.Write([]byte(`{
				"success": true,
				"data": {
					"leave_requests": [{"id": "l2", "leave_type": "sick", "start_date": "2026-09-01", "end_date": "2026-09-02", "days": 2, "reason": "Caught the office cold", "status": "pending"}],
					"total": 1
				}
			}`))
		}))

		list, err := service.LeaveRequests(context.Background(), "pending")
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		require.Equal(t, "sick", list.LeaveRequests[0].LeaveType)
	})
}

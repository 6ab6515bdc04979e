package hr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/model"
)

// LeaveRequestParams filter and page the leave-requests view.
type LeaveRequestParams struct {
	Status     string
	EmployeeID string
	Page       int
	PageSize   int
}

// LeaveRequests lists all leave requests with the company-wide summary.
func (s *Service) LeaveRequests(ctx context.Context, params LeaveRequestParams) (*model.LeaveRequestList, error) {
	values := url.Values{}
	setString(values, "status", params.Status)
	setString(values, "employee_id", params.EmployeeID)
	setInt(values, "page", params.Page)
	setInt(values, "page_size", params.PageSize)

	var list model.LeaveRequestList
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/leave-requests",
		Query:  values,
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("[Service.LeaveRequests] %w", err)
	}
	return &list, nil
}

// LeaveDecision approves or rejects a pending request.
type LeaveDecision struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// UpdateLeaveStatus records a decision on a leave request.
func (s *Service) UpdateLeaveStatus(ctx context.Context, leaveRequestID string, decision LeaveDecision) (*model.LeaveRequest, error) {
	var updated model.LeaveRequest
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/hr/leave-requests/" + leaveRequestID + "/status",
		Body:   decision,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("[Service.UpdateLeaveStatus] %w", err)
	}
	s.logger.Info().Str("leave_request_id", leaveRequestID).Str("status", decision.Status).Msg("leave request reviewed")
	return &updated, nil
}

package employee

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/model"
)

// LeaveRequestInput is the payload for submitting a leave request. Dates are
// inclusive; the backend computes the day count.
type LeaveRequestInput struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// SubmitLeaveRequest files a new leave request.
func (s *Service) SubmitLeaveRequest(ctx context.Context, input LeaveRequestInput) (*model.LeaveRequest, error) {
	var created model.LeaveRequest
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/employee/leave-requests",
		Body:   input,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("[Service.SubmitLeaveRequest] %w", err)
	}
	s.logger.Info().Str("leave_type", input.LeaveType).Msg("leave request submitted")
	return &created, nil
}

// PersonalLeaveRequests is the personal leave-requests payload.
type PersonalLeaveRequests struct {
	LeaveRequests []model.LeaveRequest `json:"leave_requests"`
	Total         int                  `json:"total"`
}

// LeaveRequests lists the user's own leave requests, optionally by status.
func (s *Service) LeaveRequests(ctx context.Context, status string) (*PersonalLeaveRequests, error) {
	values := url.Values{}
	setString(values, "status", status)

	var list PersonalLeaveRequests
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/leave-requests",
		Query:  values,
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("[Service.LeaveRequests] %w", err)
	}
	return &list, nil
}

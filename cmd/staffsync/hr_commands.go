package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/staffsync/go-staffsync/hr"
	"github.com/staffsync/go-staffsync/internal/utils"
)

func dispatchHR(ctx context.Context, application *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: staffsync hr <stats|employees|attendance|analytics|leave|notify|activity>")
	}
	switch args[0] {
	case "stats":
		return cmdHRStats(ctx, application)
	case "employees":
		return cmdHREmployees(ctx, application, args[1:])
	case "attendance":
		return cmdHRAttendance(ctx, application, args[1:])
	case "analytics":
		return cmdHRAnalytics(ctx, application, args[1:])
	case "leave":
		return cmdHRLeave(ctx, application, args[1:])
	case "notify":
		return cmdHRNotify(ctx, application, args[1:])
	case "activity":
		return cmdHRActivity(ctx, application, args[1:])
	default:
		return fmt.Errorf("unknown hr command %q", args[0])
	}
}

func cmdHRStats(ctx context.Context, application *app) error {
	stats, err := application.hr.DashboardStats(ctx)
	if err != nil {
		return err
	}

	printTitle(os.Stdout, "HR Dashboard")
	printField(os.Stdout, "Employees", fmt.Sprintf("%d total, %d active, %d inactive",
		stats.TotalEmployees, stats.ActiveEmployees, stats.InactiveEmployees))
	printField(os.Stdout, "Today", fmt.Sprintf("%d present, %d late, %d absent, %d on leave (%.1f%%)",
		stats.TodayAttendance.Present, stats.TodayAttendance.Late,
		stats.TodayAttendance.Absent, stats.TodayAttendance.OnLeave,
		stats.TodayAttendance.AttendanceRate))
	printField(os.Stdout, "Leave", fmt.Sprintf("%d pending requests, %d on approved leave today",
		stats.PendingLeaveRequests, stats.ApprovedLeavesToday))

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "DEPARTMENT\tHEADCOUNT")
	for department, count := range stats.Departments {
		fmt.Fprintf(table, "%s\t%d\n", department, count)
	}
	return table.Flush()
}

func cmdHREmployees(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("hr employees", pflag.ContinueOnError)
	page := flags.Int("page", 1, "page number")
	pageSize := flags.Int("page-size", 20, "items per page")
	search := flags.String("search", "", "search by name or email")
	department := flags.String("department", "", "filter by department")
	status := flags.String("status", "", "filter by status")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := application.hr.Employees(ctx, hr.EmployeeListParams{
		Page:       *page,
		PageSize:   *pageSize,
		Search:     *search,
		Department: *department,
		Status:     *status,
	})
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "ID\tNAME\tDEPARTMENT\tPOSITION\tHIRED\tSTATUS")
	for _, item := range result.Items {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.EmployeeID, item.Name, item.Department, item.Position, item.HireDate, item.Status)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	fmt.Printf("Page %d of %d (%d employees)\n", result.Page, result.TotalPages, result.Total)
	return nil
}

func cmdHRAttendance(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("hr attendance", pflag.ContinueOnError)
	page := flags.Int("page", 1, "page number")
	department := flags.String("department", "", "filter by department")
	startDate := flags.String("from", "", "start date (YYYY-MM-DD)")
	endDate := flags.String("to", "", "end date (YYYY-MM-DD)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := application.hr.Attendance(ctx, hr.AttendanceParams{
		Page:       *page,
		Department: *department,
		StartDate:  *startDate,
		EndDate:    *endDate,
	})
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "DATE\tNAME\tDEPARTMENT\tIN\tOUT\tHOURS\tSTATUS")
	for _, record := range result.Items {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			record.Date, record.EmployeeName, record.EmployeeDepartment,
			utils.Value(record.CheckIn), utils.Value(record.CheckOut),
			utils.Value(record.HoursWorked), record.Status)
	}
	return table.Flush()
}

func cmdHRAnalytics(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("hr analytics", pflag.ContinueOnError)
	startDate := flags.String("from", "", "start date (YYYY-MM-DD)")
	endDate := flags.String("to", "", "end date (YYYY-MM-DD)")
	department := flags.String("department", "", "filter by department")
	if err := flags.Parse(args); err != nil {
		return err
	}

	analytics, err := application.hr.Analytics(ctx, hr.AnalyticsParams{
		StartDate:  *startDate,
		EndDate:    *endDate,
		Department: *department,
	})
	if err != nil {
		return err
	}

	printTitle(os.Stdout, "Attendance Analytics")
	printField(os.Stdout, "Avg hours/employee", fmt.Sprintf("%.1f", analytics.AverageHoursPerEmployee))
	printField(os.Stdout, "Peak hours", fmt.Sprintf("in %s, out %s", analytics.PeakHours.CheckIn, analytics.PeakHours.CheckOut))

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "DEPARTMENT\tRATE")
	for _, dept := range analytics.DepartmentComparison {
		fmt.Fprintf(table, "%s\t%.1f%%\n", dept.Department, dept.AttendanceRate)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	if len(analytics.AttendanceIssues) > 0 {
		printTitle(os.Stdout, "Attendance Issues")
		issues := newTable(os.Stdout)
		fmt.Fprintln(issues, "NAME\tABSENT\tLATE")
		for _, issue := range analytics.AttendanceIssues {
			fmt.Fprintf(issues, "%s\t%d\t%d\n", issue.Name, issue.AbsentDays, issue.LateDays)
		}
		return issues.Flush()
	}
	return nil
}

func cmdHRLeave(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("hr leave", pflag.ContinueOnError)
	status := flags.String("status", "", "filter by status (pending, approved, rejected)")
	approve := flags.String("approve", "", "approve the given request ID")
	reject := flags.String("reject", "", "reject the given request ID")
	notes := flags.String("notes", "", "decision notes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *approve != "" || *reject != "" {
		decision := hr.LeaveDecision{Status: "approved"}
		requestID := *approve
		if *reject != "" {
			decision.Status = "rejected"
			requestID = *reject
		}
		if *notes != "" {
			decision.Notes = utils.Ptr(*notes)
		}
		updated, err := application.hr.UpdateLeaveStatus(ctx, requestID, decision)
		if err != nil {
			return err
		}
		printSuccess(os.Stdout, fmt.Sprintf("Leave request %s %s", updated.ID, updated.Status))
		return nil
	}

	list, err := application.hr.LeaveRequests(ctx, hr.LeaveRequestParams{Status: *status})
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "ID\tNAME\tTYPE\tFROM\tTO\tDAYS\tSTATUS")
	for _, request := range list.LeaveRequests {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			request.ID, request.EmployeeName, request.LeaveType,
			request.StartDate, request.EndDate, request.Days, request.Status)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d pending, %d approved, %d rejected\n",
		list.Summary.Pending, list.Summary.Approved, list.Summary.Rejected)
	return nil
}

func cmdHRNotify(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("hr notify", pflag.ContinueOnError)
	recipient := flags.String("to", "", "recipient user ID (omit to broadcast)")
	title := flags.String("title", "", "notification title")
	message := flags.String("message", "", "notification message")
	kind := flags.String("type", "info", "info, warning, success or error")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *title == "" || *message == "" {
		return fmt.Errorf("usage: staffsync hr notify --title <title> --message <message> [--to <user-id>]")
	}

	input := hr.NotificationInput{Title: *title, Message: *message, Type: *kind}
	if *recipient != "" {
		input.RecipientID = utils.Ptr(*recipient)
	}

	sent, err := application.hr.SendNotification(ctx, input)
	if err != nil {
		return err
	}
	printSuccess(os.Stdout, fmt.Sprintf("Notification %s sent", sent.ID))
	return nil
}

func cmdHRActivity(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("hr activity", pflag.ContinueOnError)
	limit := flags.Int("limit", 10, "number of events")
	if err := flags.Parse(args); err != nil {
		return err
	}

	activities, err := application.hr.RecentActivity(ctx, *limit)
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "WHEN\tTYPE\tEVENT")
	for _, activity := range activities {
		description := activity.Description
		if description == "" {
			description = activity.Message
		}
		fmt.Fprintf(table, "%s\t%s\t%s\n", activity.Time, activity.Type, description)
	}
	return table.Flush()
}

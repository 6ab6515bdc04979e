package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/staffsync/go-staffsync/employee"
	"github.com/staffsync/go-staffsync/internal/utils"
)

func dispatchEmployee(ctx context.Context, application *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: staffsync emp <dashboard|checkin|checkout|attendance|tasks|docs|announcements|notifications|leave>")
	}
	switch args[0] {
	case "dashboard":
		return cmdEmpDashboard(ctx, application)
	case "checkin":
		return cmdEmpCheckIn(ctx, application)
	case "checkout":
		return cmdEmpCheckOut(ctx, application)
	case "attendance":
		return cmdEmpAttendance(ctx, application, args[1:])
	case "tasks":
		return cmdEmpTasks(ctx, application, args[1:])
	case "docs":
		return cmdEmpDocs(ctx, application, args[1:])
	case "announcements":
		return cmdEmpAnnouncements(ctx, application, args[1:])
	case "notifications":
		return cmdEmpNotifications(ctx, application, args[1:])
	case "leave":
		return cmdEmpLeave(ctx, application, args[1:])
	default:
		return fmt.Errorf("unknown emp command %q", args[0])
	}
}

func cmdEmpDashboard(ctx context.Context, application *app) error {
	dashboard, err := application.employee.Dashboard(ctx)
	if err != nil {
		return err
	}

	printTitle(os.Stdout, fmt.Sprintf("%s - %s, %s", dashboard.User.Name, dashboard.User.Role, dashboard.User.Department))

	state := "not checked in"
	if dashboard.TodayAttendance.CheckedIn {
		state = "checked in at " + utils.Value(dashboard.TodayAttendance.CheckInTime)
		if dashboard.TodayAttendance.CheckedOut {
			state += ", out at " + utils.Value(dashboard.TodayAttendance.CheckOutTime)
		}
	}
	printField(os.Stdout, "Today", state)
	printField(os.Stdout, "Pending tasks", fmt.Sprintf("%d", dashboard.PendingTasks))
	printField(os.Stdout, "This month", fmt.Sprintf("%d tasks done, productivity %d, attendance %.1f%%",
		dashboard.PerformanceMetrics.TasksCompleted,
		dashboard.PerformanceMetrics.ProductivityScore,
		dashboard.AttendanceSummary.AttendanceRate))

	if len(dashboard.TodaySchedule) > 0 {
		printTitle(os.Stdout, "Due today")
		table := newTable(os.Stdout)
		for _, item := range dashboard.TodaySchedule {
			fmt.Fprintf(table, "%s\t%s\t%s\n", item.Priority, item.Title, item.Status)
		}
		if err := table.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func cmdEmpCheckIn(ctx context.Context, application *app) error {
	record, err := application.employee.CheckIn(ctx)
	if err != nil {
		return err
	}
	printSuccess(os.Stdout, "Checked in at "+utils.Value(record.CheckIn))
	return nil
}

func cmdEmpCheckOut(ctx context.Context, application *app) error {
	record, err := application.employee.CheckOut(ctx)
	if err != nil {
		return err
	}
	printSuccess(os.Stdout, fmt.Sprintf("Checked out at %s (%.2f hours)",
		utils.Value(record.CheckOut), utils.Value(record.HoursWorked)))
	return nil
}

func cmdEmpAttendance(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("emp attendance", pflag.ContinueOnError)
	startDate := flags.String("from", "", "start date (YYYY-MM-DD)")
	endDate := flags.String("to", "", "end date (YYYY-MM-DD)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	history, err := application.employee.Attendance(ctx, *startDate, *endDate)
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "DATE\tIN\tOUT\tHOURS\tSTATUS")
	for _, record := range history.Records {
		fmt.Fprintf(table, "%s\t%s\t%s\t%.2f\t%s\n",
			record.Date, utils.Value(record.CheckIn), utils.Value(record.CheckOut),
			utils.Value(record.HoursWorked), record.Status)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d days, %.1f hours, %.1f%% attendance\n",
		history.Summary.TotalDays, history.Summary.TotalHours, history.Summary.AttendanceRate)
	return nil
}

func cmdEmpTasks(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("emp tasks", pflag.ContinueOnError)
	status := flags.String("status", "", "filter by status")
	priority := flags.String("priority", "", "filter by priority")
	add := flags.String("add", "", "create a task with this title")
	due := flags.String("due", "", "due date for --add (YYYY-MM-DD)")
	complete := flags.String("complete", "", "mark the given task ID completed")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *add != "" {
		if *due == "" {
			return fmt.Errorf("--add requires --due")
		}
		level := *priority
		if level == "" {
			level = "medium"
		}
		created, err := application.employee.CreateTask(ctx, employee.NewTask{
			Title:    *add,
			Priority: level,
			DueDate:  *due,
		})
		if err != nil {
			return err
		}
		printSuccess(os.Stdout, "Task created: "+created.ID)
		return nil
	}

	if *complete != "" {
		updated, err := application.employee.UpdateTask(ctx, *complete, employee.TaskUpdate{
			Status: utils.Ptr("completed"),
		})
		if err != nil {
			return err
		}
		printSuccess(os.Stdout, "Completed: "+updated.Title)
		return nil
	}

	list, err := application.employee.Tasks(ctx, employee.TaskListParams{Status: *status, Priority: *priority})
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "ID\tPRIORITY\tTITLE\tDUE\tSTATUS")
	for _, task := range list.Tasks {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n", task.ID, task.Priority, task.Title, task.DueDate, task.Status)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d total: %d pending, %d in progress, %d completed, %d overdue\n",
		list.Summary.Total, list.Summary.Pending, list.Summary.InProgress,
		list.Summary.Completed, list.Summary.Overdue)
	return nil
}

func cmdEmpDocs(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("emp docs", pflag.ContinueOnError)
	category := flags.String("category", "", "filter by category")
	search := flags.String("search", "", "search by title")
	upload := flags.String("upload", "", "upload the given file")
	title := flags.String("title", "", "title for --upload")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *upload != "" {
		file, err := os.Open(*upload)
		if err != nil {
			return fmt.Errorf("opening %s: %w", *upload, err)
		}
		defer file.Close()

		documentTitle := *title
		if documentTitle == "" {
			documentTitle = filepath.Base(*upload)
		}
		documentCategory := *category
		if documentCategory == "" {
			documentCategory = "other"
		}

		created, err := application.employee.UploadDocument(ctx, employee.DocumentUpload{
			Title:    documentTitle,
			Category: documentCategory,
			FileName: filepath.Base(*upload),
			Content:  file,
		})
		if err != nil {
			return err
		}
		printSuccess(os.Stdout, "Uploaded: "+created.FileName)
		return nil
	}

	list, err := application.employee.Documents(ctx, *category, *search)
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "TITLE\tCATEGORY\tFILE\tSIZE\tUPLOADED")
	for _, document := range list.Documents {
		fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%s\n",
			document.Title, document.Category, document.FileName, document.FileSize, document.UploadedAt)
	}
	return table.Flush()
}

func cmdEmpAnnouncements(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("emp announcements", pflag.ContinueOnError)
	page := flags.Int("page", 1, "page number")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := application.employee.Announcements(ctx, *page, 10)
	if err != nil {
		return err
	}

	for _, announcement := range result.Items {
		printTitle(os.Stdout, fmt.Sprintf("[%s] %s", announcement.Priority, announcement.Title))
		fmt.Println(announcement.Content)
		fmt.Println()
	}
	fmt.Printf("Page %d of %d\n", result.Page, result.TotalPages)
	return nil
}

func cmdEmpNotifications(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("emp notifications", pflag.ContinueOnError)
	unreadOnly := flags.Bool("unread", false, "only unread notifications")
	markRead := flags.String("read", "", "mark the given notification ID read")
	readAll := flags.Bool("read-all", false, "mark everything read")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *markRead != "" {
		if err := application.employee.MarkNotificationRead(ctx, *markRead); err != nil {
			return err
		}
		printSuccess(os.Stdout, "Marked read")
		return nil
	}
	if *readAll {
		if err := application.employee.MarkAllNotificationsRead(ctx); err != nil {
			return err
		}
		printSuccess(os.Stdout, "All notifications marked read")
		return nil
	}

	inbox, err := application.employee.Notifications(ctx, *unreadOnly, 20)
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "ID\tFROM\tTYPE\tTITLE\tREAD")
	for _, notification := range inbox.Notifications {
		read := " "
		if notification.IsRead {
			read = "✓"
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			notification.ID, notification.SenderName, notification.Type, notification.Title, read)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d unread\n", inbox.UnreadCount)
	return nil
}

func cmdEmpLeave(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("emp leave", pflag.ContinueOnError)
	status := flags.String("status", "", "filter by status")
	request := flags.String("request", "", "submit a request of this type (sick, vacation, personal, emergency)")
	from := flags.String("from", "", "start date for --request (YYYY-MM-DD)")
	to := flags.String("to", "", "end date for --request (YYYY-MM-DD)")
	reason := flags.String("reason", "", "reason for --request")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *request != "" {
		if *from == "" || *to == "" || *reason == "" {
			return fmt.Errorf("--request requires --from, --to and --reason")
		}
		created, err := application.employee.SubmitLeaveRequest(ctx, employee.LeaveRequestInput{
			LeaveType: *request,
			StartDate: *from,
			EndDate:   *to,
			Reason:    *reason,
		})
		if err != nil {
			return err
		}
		printSuccess(os.Stdout, fmt.Sprintf("Leave request submitted (%d days, %s)", created.Days, created.Status))
		return nil
	}

	list, err := application.employee.LeaveRequests(ctx, *status)
	if err != nil {
		return err
	}

	table := newTable(os.Stdout)
	fmt.Fprintln(table, "TYPE\tFROM\tTO\tDAYS\tSTATUS")
	for _, item := range list.LeaveRequests {
		fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%s\n",
			item.LeaveType, item.StartDate, item.EndDate, item.Days, item.Status)
	}
	return table.Flush()
}

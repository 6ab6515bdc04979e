package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/internal/utils"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, successStyle.Render(message))
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), value)
}

// renderError prints a failure as the user-facing message, with the raw
// error underneath at a dimmer weight for debugging.
func renderError(w io.Writer, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(w, errorStyle.Render(apiErr.Message()))
		if details := validationLines(apiErr); len(details) > 0 {
			for _, line := range details {
				fmt.Fprintln(w, "  "+line)
			}
		}
		fmt.Fprintln(w, dimStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(w, errorStyle.Render("An error occurred"))
	fmt.Fprintln(w, dimStyle.Render(err.Error()))
}

// validationLines flattens each validation detail into "field: message".
func validationLines(apiErr *client.APIError) []string {
	if apiErr.Err == nil {
		return nil
	}
	var lines []string
	for _, detail := range apiErr.Err.ValidationDetails() {
		location := strings.Join(utils.ToStringSlice(detail.Loc), ".")
		if location == "" {
			lines = append(lines, detail.Msg)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", location, detail.Msg))
	}
	return lines
}

// newTable returns a tabwriter wired for aligned column output.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: staffsync [flags] <command>

Commands:
  login                     Sign in and store the session
  signup                    Create an employee account
  logout                    Revoke and clear the session
  whoami                    Show the signed-in user

  hr stats                  HR dashboard statistics
  hr employees              List employees
  hr attendance             Company-wide attendance
  hr analytics              Attendance analytics report
  hr leave                  Review leave requests
  hr notify                 Send a notification
  hr activity               Recent activity feed

  emp dashboard             Personal dashboard
  emp checkin | checkout    Mark today's attendance
  emp attendance            Personal attendance history
  emp tasks                 Personal task list
  emp docs                  Personal documents
  emp announcements         Company announcements
  emp notifications         Personal inbox
  emp leave                 Personal leave requests

Flags:
  --config <path>           Config file (default: ~/.config/staffsync/config.yaml)
  --base-url <url>          API base URL override
  --log-level <level>       trace, debug, info, warn or error
`)
}

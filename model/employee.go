// Package model holds the API's data shapes, shared by the HR and employee
// service packages. Dates and times travel as the backend's ISO strings;
// decoding them into richer types is left to callers that need it.
package model

// Employee statuses.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusOnLeave  = "on_leave"
)

// Employee is a full employee record.
type Employee struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Department       string   `json:"department"`
	Position         string   `json:"position"`
	HireDate         string   `json:"hire_date"`
	Salary           *float64 `json:"salary,omitempty"`
	Status           string   `json:"status"`
	PerformanceScore *float64 `json:"performance_score,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

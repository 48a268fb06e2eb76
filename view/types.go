package view

// EmployeeCard is the rule-heavy DTO: most properties are computed.
type EmployeeCard struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Age             int    `json:"age"`
	Status          string `json:"status"`
	FullName        string `json:"full_name"`
	SalaryFormatted string `json:"salary_formatted"`
}

// EmployeeRow is the auto-match-heavy DTO: properties line up with
// hr.Employee by name, with a few deliberate mismatches.
type EmployeeRow struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	Nickname  string `json:"nickname"` // *string on the source side
	Salary    int64  `json:"salary"`   // float64 on the source side: never auto-copied
}

// DepartmentSummary exercises optional wrapping on the destination side.
type DepartmentSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	HeadID *int64 `json:"head_id,omitempty"`
	Size   int    `json:"size"`
}

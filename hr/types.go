package hr

import (
	"time"
)

// Employee is the source domain record used across examples and tests.
type Employee struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	Salary      float64   `json:"salary"`
	Nickname    *string   `json:"nickname,omitempty"`
	Grade       Grade     `json:"grade"`

	// Internal bookkeeping, never exposed outside the package.
	note string
}

// Note returns the internal note; exists so the field is not flagged unused.
func (e Employee) Note() string { return e.note }

// Grade is a custom type for type-safe seniority handling.
type Grade string

const (
	GradeJunior    Grade = "JUNIOR"
	GradeSenior    Grade = "SENIOR"
	GradePrincipal Grade = "PRINCIPAL"
)

// Department groups employees; used by batch-mapping examples.
type Department struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	HeadID    *int64     `json:"head_id,omitempty"`
	Employees []Employee `json:"employees"`
	CreatedAt time.Time  `json:"created_at"`
}

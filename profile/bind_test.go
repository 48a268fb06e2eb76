package profile_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prop-caster/hr"
	"prop-caster/mapper"
	"prop-caster/profile"
	"prop-caster/view"
)

const cardProfileYAML = `
version: "1"
profiles:
  - source: hr.Employee
    target: view.EmployeeCard
    fields:
      - target: Age
        source: DateOfBirth
        transform: YearsSince
      - target: FullName
        transform: FullName
      - target: SalaryFormatted
        source: Salary
        transform: FormatSalary
        condition: IsActive
    ignore:
      - Email
`

func cardFuncs(t *testing.T) *profile.FuncRegistry {
	t.Helper()

	funcs := profile.NewFuncRegistry()

	require.NoError(t, funcs.RegisterFunc("YearsSince", func(dob time.Time) int {
		return time.Now().Year() - dob.Year()
	}))
	require.NoError(t, funcs.RegisterFunc("FullName", func(e hr.Employee) string {
		return e.FirstName + " " + e.LastName
	}))
	require.NoError(t, funcs.RegisterFunc("FormatSalary", func(salary float64) string {
		return fmt.Sprintf("$%.2f", salary)
	}))
	require.NoError(t, funcs.RegisterCondition("IsActive", func(e hr.Employee) bool {
		return e.IsActive
	}))

	return funcs
}

func TestBindBuildsWorkingRegistry(t *testing.T) {
	t.Parallel()

	f, err := profile.Parse([]byte(cardProfileYAML))
	require.NoError(t, err)

	reg, err := profile.Bind[hr.Employee, view.EmployeeCard](f, cardFuncs(t))
	require.NoError(t, err)

	src := &hr.Employee{
		ID:          1,
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Email:       "j@x.com",
		IsActive:    true,
		Salary:      75000.50,
	}

	got, err := reg.MapOne(src)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)          // auto-matched
	assert.Equal(t, "", got.Email)             // ignored despite the name match
	assert.Equal(t, "John Doe", got.FullName)  // combine
	assert.Equal(t, "$75000.50", got.SalaryFormatted)
	assert.Equal(t, time.Now().Year()-1990, got.Age)
	assert.Equal(t, "", got.Status) // no rule, no same-named source property
}

func TestBindConditionGatesRule(t *testing.T) {
	t.Parallel()

	f, err := profile.Parse([]byte(cardProfileYAML))
	require.NoError(t, err)

	reg, err := profile.Bind[hr.Employee, view.EmployeeCard](f, cardFuncs(t))
	require.NoError(t, err)

	got, err := reg.MapOne(&hr.Employee{IsActive: false, Salary: 75000.50})
	require.NoError(t, err)

	assert.Equal(t, "", got.SalaryFormatted)
}

func TestBindNoMatchingProfile(t *testing.T) {
	t.Parallel()

	f, err := profile.Parse([]byte(cardProfileYAML))
	require.NoError(t, err)

	_, err = profile.Bind[hr.Employee, view.EmployeeRow](f, cardFuncs(t))
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestBindUnknownFunctionNames(t *testing.T) {
	t.Parallel()

	f, err := profile.Parse([]byte(cardProfileYAML))
	require.NoError(t, err)

	funcs := profile.NewFuncRegistry()
	require.NoError(t, funcs.RegisterCondition("IsActive", func(e hr.Employee) bool { return e.IsActive }))

	_, err = profile.Bind[hr.Employee, view.EmployeeCard](f, funcs)
	assert.ErrorIs(t, err, profile.ErrUnknownFunc)

	_, err = profile.Bind[hr.Employee, view.EmployeeCard](f, nil)
	assert.ErrorIs(t, err, profile.ErrUnknownFunc)
}

func TestBindRejectsMistypedCondition(t *testing.T) {
	t.Parallel()

	f, err := profile.Parse([]byte(cardProfileYAML))
	require.NoError(t, err)

	funcs := cardFuncs(t)
	// Predicate over the wrong source type.
	require.NoError(t, funcs.RegisterCondition("IsActive", func(d hr.Department) bool { return true }))

	var cfg *mapper.ConfigError

	_, err = profile.Bind[hr.Employee, view.EmployeeCard](f, funcs)
	assert.ErrorAs(t, err, &cfg)
}

func TestBindSurfacesBadPropertyReferences(t *testing.T) {
	t.Parallel()

	const badYAML = `
profiles:
  - source: hr.Employee
    target: view.EmployeeCard
    fields:
      - target: Emial
        source: Email
`

	f, err := profile.Parse([]byte(badYAML))
	require.NoError(t, err)

	var refErr *mapper.PropertyRefError

	_, err = profile.Bind[hr.Employee, view.EmployeeCard](f, nil)
	require.ErrorAs(t, err, &refErr)
	assert.Contains(t, refErr.Suggestions, "Email")
}

func TestBindRejectsStructurallyInvalidFiles(t *testing.T) {
	t.Parallel()

	f := &profile.File{
		Version:  "1",
		Profiles: []profile.Profile{{Source: "hr.Employee", Target: ""}},
	}

	_, err := profile.Bind[hr.Employee, view.EmployeeCard](f, nil)
	assert.Error(t, err)
}

func TestFuncRegistryRejectsBadShapes(t *testing.T) {
	t.Parallel()

	funcs := profile.NewFuncRegistry()

	assert.Error(t, funcs.RegisterFunc("", func(int) int { return 0 }))
	assert.Error(t, funcs.RegisterFunc("bad", 42))
	assert.Error(t, funcs.RegisterFunc("bad", func(int, int) int { return 0 }))
	assert.Error(t, funcs.RegisterCondition("bad", func(int) int { return 0 }))
	assert.False(t, funcs.HasFunc("bad"))
	assert.False(t, funcs.HasCondition("bad"))

	require.NoError(t, funcs.RegisterFunc("ok", func(int) int { return 0 }))
	assert.True(t, funcs.HasFunc("ok"))
}

// Package profile provides declarative mapping profiles: the YAML/JSON
// counterpart of the fluent registry API.
//
// A profile file pins the rules for one or more source->target type pairs.
// Transform, combine, and condition functions are referenced by name and
// resolved against a FuncRegistry at bind time.
//
// # Schema Overview
//
//	version: "1"
//	profiles:
//	  - source: hr.Employee
//	    target: view.EmployeeCard
//	    fields:
//	      - target: Age
//	        source: DateOfBirth
//	        transform: YearsSince
//	      - target: FullName        # combine: no source property
//	        transform: FullName
//	      - target: SalaryFormatted
//	        source: Salary
//	        transform: FormatCurrency
//	        condition: IsActive
//	    ignore:
//	      - Email
//
// A field rule with no transform is a direct copy; a rule with no source is
// a combine over the whole source object; a condition names a registered
// predicate over the source object.
package profile

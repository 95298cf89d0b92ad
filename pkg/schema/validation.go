// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package schema

import (
	"github.com/consensys/go-framecheck/pkg/frame"
	"github.com/consensys/go-framecheck/pkg/schema/constraint"
)

// Options adjusts how a validation pass treats the dataset.
type Options struct {
	// Strict reports dataset columns the schema does not name as unknown,
	// instead of ignoring them.
	Strict bool
}

// Validate checks a dataset against a schema, producing one aggregated
// report.  Fields are checked independently and every field's outcome is
// collected; validation never fails fast across fields.  Validation is pure:
// re-running it against the same dataset yields an identical report.
func Validate(spec *SchemaSpec, f frame.Frame) *Report {
	return ValidateWith(spec, f, Options{})
}

// ValidateWith is Validate with explicit options.
func ValidateWith(spec *SchemaSpec, f frame.Frame, opts Options) *Report {
	results := make([]FieldResult, 0, spec.Width())
	//
	for _, field := range spec.Fields() {
		results = append(results, FieldResult{field.Name, checkField(field, f)})
	}
	//
	if opts.Strict {
		for _, col := range f.Columns() {
			if _, ok := spec.Field(col.Name()); !ok {
				results = append(results, FieldResult{col.Name(), &UnknownColumn{col.Name()}})
			}
		}
	}
	//
	return &Report{results}
}

// Assert checks a dataset against a schema, surfacing any failure as a
// single aggregated error.
func Assert(spec *SchemaSpec, f frame.Frame) error {
	return Validate(spec, f).Error()
}

// checkField decides the outcome for one declared field: presence, then type
// compatibility, then attached validators.
func checkField(field FieldSpec, f frame.Frame) Failure {
	col, ok := f.Column(field.Name)
	//
	if !ok {
		if field.Required() {
			return &MissingColumn{field.Name}
		}
		// Not required, not present.
		return nil
	}
	// Unwrap not-required to obtain the effective type for present columns.
	effective := field.Type
	if nr := effective.AsNotRequired(); nr != nil {
		effective = nr.Inner
	}
	// Type matching scans every value, since a column's storage may hold
	// heterogeneous values regardless of what its tag claims.  One
	// counterexample settles the field, so scanning stops there.
	for row := uint(0); row < col.Height(); row++ {
		if value := col.Get(row); !Accepts(effective, value) {
			return &TypeMismatch{field.Name, effective, row, value}
		}
	}
	// Type matched; run the validator chain.
	if violations := checkConstraints(field, effective, col); len(violations) > 0 {
		return &ConstraintViolations{field.Name, violations}
	}
	//
	return nil
}

// checkConstraints runs a field's validators against every value of a
// column, in declaration order, independently per validator.  This step is
// exhaustive: every offending (row, validator) pair is collected.  Null
// values are exempt whenever the field's type permits null, so validators
// never special-case nullability themselves.
func checkConstraints(field FieldSpec, effective Type, col frame.Column) []Violation {
	var (
		nullable   = effective.Nullable()
		height     = col.Height()
		violations []Violation
	)
	// Materialise once; column constraints need the full value sequence.
	values := make([]any, height)
	for row := uint(0); row < height; row++ {
		values[row] = col.Get(row)
	}
	//
	for _, c := range field.Validators {
		if cc, ok := c.(constraint.ColumnConstraint); ok {
			for _, row := range cc.CheckColumn(values) {
				violations = append(violations, Violation{row, cc.Describe()})
			}
			//
			continue
		}
		//
		for row, value := range values {
			if frame.IsAny(value) || (frame.IsNull(value) && nullable) {
				continue
			} else if !c.Check(value) {
				violations = append(violations, Violation{uint(row), c.Describe()})
			}
		}
	}
	//
	return violations
}

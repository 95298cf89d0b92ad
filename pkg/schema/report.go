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
	"fmt"
	"strings"
)

// Failure embodies structured information about one failing field outcome.
type Failure interface {
	// Message provides a suitable error message.
	Message() string
}

// FieldResult captures the outcome of checking one declared field.  A nil
// Outcome indicates the field passed.
type FieldResult struct {
	// Field name, as declared by the schema.
	Field string
	// Outcome of the check, or nil on success.
	Outcome Failure
}

// IsOk checks whether this field passed.
func (p FieldResult) IsOk() bool {
	return p.Outcome == nil
}

// Report aggregates the per-field outcomes of one validation pass.  Field
// order mirrors schema declaration order; in strict mode, results for
// unknown dataset columns follow in dataset order.  Reports are created
// fresh per validation and never mutated after return.
type Report struct {
	// Fields holds one result per declared field (plus, in strict mode, one
	// per unknown column).
	Fields []FieldResult
}

// Ok checks whether every field passed.
func (p *Report) Ok() bool {
	for _, fr := range p.Fields {
		if !fr.IsOk() {
			return false
		}
	}
	//
	return true
}

// Error returns nil when the report is ok, and otherwise a single
// *ValidationError aggregating every failure.
func (p *Report) Error() error {
	if p.Ok() {
		return nil
	}
	//
	return &ValidationError{p}
}

// ============================================================================
// Outcomes
// ============================================================================

// MissingColumn indicates a required field has no corresponding column in
// the dataset.
type MissingColumn struct {
	// Field which is missing.
	Field string
}

// Message provides a suitable error message.
func (p *MissingColumn) Message() string {
	return fmt.Sprintf("missing column %q", p.Field)
}

func (p *MissingColumn) String() string {
	return p.Message()
}

// UnknownColumn indicates the dataset carries a column the schema does not
// name.  This outcome only arises in strict mode; by default such columns
// are ignored entirely.
type UnknownColumn struct {
	// Field (column name) which is not declared.
	Field string
}

// Message provides a suitable error message.
func (p *UnknownColumn) Message() string {
	return fmt.Sprintf("unknown column %q", p.Field)
}

func (p *UnknownColumn) String() string {
	return p.Message()
}

// TypeMismatch indicates a column holds at least one value incompatible with
// the field's declared type.  The first offending value is named; scanning
// stops there, since a single counterexample settles the field.
type TypeMismatch struct {
	// Field whose type was violated.
	Field string
	// Expected type, after unwrapping any not-required wrapper.
	Expected Type
	// Row of the first offending value.
	Row uint
	// Value found at that row.
	Value any
}

// Message provides a suitable error message.
func (p *TypeMismatch) Message() string {
	return fmt.Sprintf("column %q expected %s, found %v (row %d)",
		p.Field, p.Expected.String(), valueString(p.Value), p.Row)
}

func (p *TypeMismatch) String() string {
	return p.Message()
}

// Violation pairs an offending row with the description of the validator it
// failed.
type Violation struct {
	// Row of the offending value.
	Row uint
	// Description of the failed validator.
	Description string
}

// ConstraintViolations indicates one or more attached validators failed.
// Unlike type mismatches, constraint checking is exhaustive: every offending
// (row, validator) pair is listed.
type ConstraintViolations struct {
	// Field whose validators failed.
	Field string
	// Violations, ordered by validator declaration then ascending row.
	Violations []Violation
}

// Message provides a suitable error message.
func (p *ConstraintViolations) Message() string {
	var lines []string
	//
	for _, v := range p.Violations {
		lines = append(lines, fmt.Sprintf("%s (row %d)", v.Description, v.Row))
	}
	//
	return fmt.Sprintf("column %q: %s", p.Field, strings.Join(lines, "; "))
}

func (p *ConstraintViolations) String() string {
	return p.Message()
}

func valueString(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", value)
	}
	//
	return fmt.Sprintf("%v", value)
}

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

// Package constraint provides the validators which can be attached to schema
// fields.  A validator is checked only after a field's type has matched, and
// never needs to handle nulls itself: the executor exempts null values
// whenever the field's type permits them.
package constraint

// Constraint is a named predicate over individual column values.  Checking
// is exhaustive: the executor runs every constraint against every row and
// collects all failures, rather than stopping at the first.
type Constraint interface {
	// Check determines whether a single value satisfies this constraint.  A
	// value outside the constraint's domain (e.g. a string given to a
	// numeric range) simply fails the check.
	Check(value any) bool
	// Describe returns a human-readable description of this constraint, used
	// verbatim in violation reports.
	Describe() string
}

// ColumnConstraint is a predicate over an entire column, for constraints
// (such as uniqueness) which cannot be decided one value at a time.  A
// constraint implementing this interface is checked once per column instead
// of once per value.
type ColumnConstraint interface {
	Constraint
	// CheckColumn returns the rows violating this constraint, in ascending
	// order.
	CheckColumn(values []any) []uint
}

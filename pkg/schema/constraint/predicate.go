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
package constraint

// PredicateConstraint wraps an arbitrary predicate as a constraint.
type PredicateConstraint struct {
	description string
	predicate   func(any) bool
}

// Predicate constructs a constraint from an arbitrary predicate, described
// in violation reports by the given description.
func Predicate(description string, predicate func(any) bool) *PredicateConstraint {
	return &PredicateConstraint{description, predicate}
}

// Check determines whether a single value satisfies this constraint.
func (p *PredicateConstraint) Check(value any) bool {
	return p.predicate(value)
}

// Describe returns a human-readable description of this constraint.
func (p *PredicateConstraint) Describe() string {
	return p.description
}

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

import (
	"fmt"
	"unicode/utf8"
)

// MinLenConstraint restricts string values to a minimum length, measured in
// runes rather than bytes.
type MinLenConstraint struct {
	// N is the minimum permitted length.
	N uint
}

// MinLen constructs a constraint requiring string values of at least n runes.
func MinLen(n uint) *MinLenConstraint {
	return &MinLenConstraint{n}
}

// Check determines whether a single value satisfies this constraint.
// Non-string values fail.
func (p *MinLenConstraint) Check(value any) bool {
	if s, ok := value.(string); ok {
		return uint(utf8.RuneCountInString(s)) >= p.N
	}
	//
	return false
}

// Describe returns a human-readable description of this constraint.
func (p *MinLenConstraint) Describe() string {
	return fmt.Sprintf("value must be at least %d characters", p.N)
}

// MaxLenConstraint restricts string values to a maximum length, measured in
// runes rather than bytes.
type MaxLenConstraint struct {
	// N is the maximum permitted length.
	N uint
}

// MaxLen constructs a constraint requiring string values of at most n runes.
func MaxLen(n uint) *MaxLenConstraint {
	return &MaxLenConstraint{n}
}

// Check determines whether a single value satisfies this constraint.
// Non-string values fail.
func (p *MaxLenConstraint) Check(value any) bool {
	if s, ok := value.(string); ok {
		return uint(utf8.RuneCountInString(s)) <= p.N
	}
	//
	return false
}

// Describe returns a human-readable description of this constraint.
func (p *MaxLenConstraint) Describe() string {
	return fmt.Sprintf("value must be at most %d characters", p.N)
}

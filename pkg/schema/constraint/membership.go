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
	"strings"

	"github.com/consensys/go-framecheck/pkg/frame"
)

// InConstraint restricts values to a fixed set of allowed values.
type InConstraint struct {
	// Allowed values, compared by value rather than identity.
	Allowed []any
}

// In constructs a constraint restricting values to the given allowed set.
func In(allowed ...any) *InConstraint {
	return &InConstraint{allowed}
}

// Check determines whether a single value satisfies this constraint.
func (p *InConstraint) Check(value any) bool {
	for _, allowed := range p.Allowed {
		if frame.ValueEqual(value, allowed) {
			return true
		}
	}
	//
	return false
}

// Describe returns a human-readable description of this constraint.
func (p *InConstraint) Describe() string {
	var names []string
	//
	for _, v := range p.Allowed {
		names = append(names, fmt.Sprintf("%v", v))
	}
	//
	return fmt.Sprintf("value must be one of {%s}", strings.Join(names, ", "))
}

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

	"github.com/consensys/go-framecheck/pkg/frame"
)

// RangeConstraint restricts numeric values to an inclusive range [Min, Max].
type RangeConstraint struct {
	// Min is the inclusive lower bound.
	Min float64
	// Max is the inclusive upper bound.
	Max float64
}

// Range constructs a constraint restricting values to [min, max] inclusive.
func Range(min, max float64) *RangeConstraint {
	return &RangeConstraint{min, max}
}

// Check determines whether a single value satisfies this constraint.
// Non-numeric values fail.
func (p *RangeConstraint) Check(value any) bool {
	if f, ok := frame.AsFloat(value); ok {
		return f >= p.Min && f <= p.Max
	}
	//
	return false
}

// Describe returns a human-readable description of this constraint.
func (p *RangeConstraint) Describe() string {
	return fmt.Sprintf("value must be in range [%v, %v]", p.Min, p.Max)
}

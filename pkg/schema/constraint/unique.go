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
	"github.com/consensys/go-framecheck/pkg/frame"
)

// UniqueConstraint requires every value in a column to be distinct.  Every
// row participating in a duplicate group is reported, not just the second
// and later occurrences.  Nulls and the Any sentinel never count towards
// duplication.
type UniqueConstraint struct{}

// Unique constructs a constraint requiring all column values to be distinct.
func Unique() *UniqueConstraint {
	return &UniqueConstraint{}
}

// Check is vacuously true for individual values; uniqueness is only
// decidable column-wide (see CheckColumn).
func (p *UniqueConstraint) Check(value any) bool {
	return true
}

// CheckColumn returns every row participating in a duplicate group, in
// ascending order.
func (p *UniqueConstraint) CheckColumn(values []any) []uint {
	var (
		groups = make(map[any][]uint, len(values))
		rows   []uint
	)
	//
	for i, v := range values {
		if frame.IsNull(v) || frame.IsAny(v) {
			continue
		}
		//
		key := uniqueKey(v)
		groups[key] = append(groups[key], uint(i))
	}
	// Second pass keeps the ascending row order of the column.
	for i, v := range values {
		if frame.IsNull(v) || frame.IsAny(v) {
			continue
		} else if len(groups[uniqueKey(v)]) > 1 {
			rows = append(rows, uint(i))
		}
	}
	//
	return rows
}

// Describe returns a human-readable description of this constraint.
func (p *UniqueConstraint) Describe() string {
	return "value must be unique"
}

// uniqueKey normalises a value for use as a map key, so that numerically
// equal values of different kinds land in the same duplicate group.
func uniqueKey(v any) any {
	if f, ok := frame.AsFloat(v); ok {
		return f
	}
	//
	return v
}

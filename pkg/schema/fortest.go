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
	"sort"
	"strings"

	"github.com/consensys/go-framecheck/pkg/frame"
)

// ForTest builds a frame for testing from partial column data.  Columns the
// schema declares but the data omits are filled with the frame.Any sentinel,
// which matches every type and is exempt from validators.  This lets a test
// populate only the columns it actually exercises.  Data columns must all be
// named by the schema and share one length.
func ForTest(spec *SchemaSpec, data map[string][]any) (*frame.ArrayFrame, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("test data must not be empty")
	}
	// Reject columns the schema does not declare.
	var unknown []string
	//
	for name := range data {
		if _, ok := spec.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	//
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown columns in test data: %s", strings.Join(unknown, ", "))
	}
	// All provided columns share one length, enforced by FromColumns below.
	var height int
	for _, values := range data {
		height = len(values)
		break
	}
	//
	columns := make([]frame.Column, 0, spec.Width())
	//
	for _, field := range spec.Fields() {
		if values, ok := data[field.Name]; ok {
			columns = append(columns, frame.NewColumn(field.Name, values))
			continue
		}
		//
		fill := make([]any, height)
		for i := range fill {
			fill[i] = frame.Any
		}
		//
		columns = append(columns, frame.NewArrayColumn(field.Name, frame.ObjectTag, fill))
	}
	//
	return frame.FromColumns(columns...)
}

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

// Package frame provides a uniform, read-only view of a tabular dataset: an
// ordered sequence of named, equal-length columns.  Backend adapters (e.g.
// the JSON and CSV readers) construct frames; the schema engine only ever
// consumes them.
package frame

import (
	"fmt"
)

// Frame provides a uniform view of one tabular dataset.
type Frame interface {
	// Columns returns the columns of this frame in dataset order.
	Columns() []Column
	// Column looks up a column by name, returning false if no column with
	// that name exists.
	Column(name string) (Column, bool)
	// Height returns the number of rows shared by every column.
	Height() uint
}

// ArrayFrame is a frame backed by an ordered slice of columns, with a name
// index for lookup.
type ArrayFrame struct {
	columns []Column
	index   map[string]int
}

// FromColumns constructs a frame from the given columns, which must have
// unique names and equal heights.
func FromColumns(columns ...Column) (*ArrayFrame, error) {
	index := make(map[string]int, len(columns))
	//
	for i, col := range columns {
		if _, ok := index[col.Name()]; ok {
			return nil, fmt.Errorf("duplicate column %q", col.Name())
		} else if i > 0 && col.Height() != columns[0].Height() {
			return nil, fmt.Errorf("column %q has height %d, expected %d",
				col.Name(), col.Height(), columns[0].Height())
		}
		//
		index[col.Name()] = i
	}
	//
	return &ArrayFrame{columns, index}, nil
}

// Columns returns the columns of this frame in dataset order.
func (p *ArrayFrame) Columns() []Column {
	return p.columns
}

// Column looks up a column by name.
func (p *ArrayFrame) Column(name string) (Column, bool) {
	if i, ok := p.index[name]; ok {
		return p.columns[i], true
	}
	//
	return nil, false
}

// Height returns the number of rows in this frame.
func (p *ArrayFrame) Height() uint {
	if len(p.columns) == 0 {
		return 0
	}
	//
	return p.columns[0].Height()
}

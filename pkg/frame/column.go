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
package frame

// Column describes a single dataset column and provides read-only access to
// its values.  Implementations are supplied by backend adapters; the
// validation engine never mutates a column.
type Column interface {
	// Name returns the name of this column.
	Name() string
	// Height returns the number of rows in this column.
	Height() uint
	// Tag returns the declared (or inferred) element type tag for this
	// column.  A tag of "object" indicates the column makes no claim about
	// the kinds of its values.  Tags are advisory: validation always
	// inspects individual values rather than trusting the tag.
	Tag() string
	// Get returns the value at a given row of this column.  Accessing a row
	// beyond the column height panics, as it indicates a broken adapter.
	Get(row uint) any
}

// ObjectTag is the element type tag of a column whose values are not claimed
// to share a single kind.
const ObjectTag = "object"

// ArrayColumn is a column backed by a slice of raw values.
type ArrayColumn struct {
	name string
	tag  string
	data []any
}

// NewArrayColumn constructs a column over the given data, carrying an
// explicit element type tag.
func NewArrayColumn(name string, tag string, data []any) ArrayColumn {
	return ArrayColumn{name, tag, data}
}

// NewColumn constructs a column over the given data, inferring its element
// type tag from the values: if every value shares one kind (nulls aside)
// that kind names the tag, otherwise the tag is "object".
func NewColumn(name string, data []any) ArrayColumn {
	return ArrayColumn{name, inferTag(data), data}
}

// Name returns the name of this column.
func (p ArrayColumn) Name() string {
	return p.name
}

// Height returns the number of rows in this column.
func (p ArrayColumn) Height() uint {
	return uint(len(p.data))
}

// Tag returns the element type tag for this column.
func (p ArrayColumn) Tag() string {
	return p.tag
}

// Get returns the value at a given row of this column.
func (p ArrayColumn) Get(row uint) any {
	return p.data[row]
}

func inferTag(data []any) string {
	var kind = NullKind
	//
	for _, v := range data {
		k := KindOf(v)
		if k == NullKind || k == AnyKind {
			continue
		} else if kind == NullKind {
			kind = k
		} else if kind != k {
			return ObjectTag
		}
	}
	// All-null columns make no useful claim.
	if kind == NullKind {
		return ObjectTag
	}
	//
	return kind.String()
}

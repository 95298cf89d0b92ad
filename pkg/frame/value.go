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

import (
	"time"
)

// Kind classifies the runtime kind of a single column value.  Columns are
// permitted to hold heterogeneous values (e.g. a union-typed column), hence
// classification happens per value rather than per column.
type Kind uint8

const (
	// NullKind indicates the null marker (an untyped nil).
	NullKind Kind = iota
	// IntKind indicates any signed or unsigned integer value.
	IntKind
	// FloatKind indicates a floating-point value.
	FloatKind
	// StringKind indicates a string value.
	StringKind
	// BoolKind indicates a boolean value.
	BoolKind
	// TimestampKind indicates a time.Time value.
	TimestampKind
	// AnyKind indicates the Any sentinel used for test data.
	AnyKind
	// UnknownKind indicates a value outside the supported value model.
	UnknownKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case TimestampKind:
		return "timestamp"
	case AnyKind:
		return "any"
	default:
		return "unknown"
	}
}

// anySentinel is the type backing the Any value.  It deliberately has no
// exported fields so Any compares equal only to itself under ==.
type anySentinel struct{}

func (anySentinel) String() string {
	return "ANY"
}

// Any is a sentinel value which matches every declared type and is exempt
// from all validators.  It exists to support partially-specified test
// frames, where columns irrelevant to the test are filled with Any.
var Any any = anySentinel{}

// KindOf classifies a raw column value.  All integer widths collapse into
// IntKind, and both float widths collapse into FloatKind.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return NullKind
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return IntKind
	case float32, float64:
		return FloatKind
	case string:
		return StringKind
	case bool:
		return BoolKind
	case time.Time:
		return TimestampKind
	case anySentinel:
		return AnyKind
	default:
		return UnknownKind
	}
}

// IsNull checks whether a given value is the null marker.
func IsNull(value any) bool {
	return value == nil
}

// IsAny checks whether a given value is the Any sentinel.
func IsAny(value any) bool {
	_, ok := value.(anySentinel)
	return ok
}

// AsInt attempts to view a value as a signed 64bit integer.  This succeeds
// for all integer values, and also for floats whose fractional part is
// exactly zero (see IntType for the rationale).
func AsInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return asIntegralFloat(float64(v))
	case float64:
		return asIntegralFloat(v)
	}
	//
	return 0, false
}

// AsFloat attempts to view a value as a 64bit float.  This succeeds for all
// numeric values (integers widen losslessly enough for validation purposes).
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	//
	if i, ok := AsInt(value); ok {
		return float64(i), true
	}
	//
	return 0, false
}

// ValueEqual compares two scalar values by value.  Numeric values compare
// across kinds (so int64(1) equals float64(1.0)), everything else compares
// under plain interface equality.
func ValueEqual(a, b any) bool {
	fa, okA := AsFloat(a)
	fb, okB := AsFloat(b)
	//
	if okA && okB {
		return fa == fb
	} else if okA != okB {
		return false
	}
	//
	return a == b
}

func asIntegralFloat(f float64) (int64, bool) {
	// The bounds check rules out NaN, the infinities and anything beyond
	// int64 range, all of which would make the conversion below
	// implementation-defined.
	if f < -9.007199254740992e15 || f > 9.007199254740992e15 {
		return 0, false
	} else if f == float64(int64(f)) {
		return int64(f), true
	}
	//
	return 0, false
}

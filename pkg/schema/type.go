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
	"strings"

	"github.com/consensys/go-framecheck/pkg/frame"
)

// Type represents a _column type_ which restricts the set of values a column
// can take on.  For example, a column might be restricted to holding only
// integer values, or values drawn from a fixed literal set.  Types form a
// small closed algebra: primitives, backend-native tags, options, unions,
// literal sets and the not-required wrapper.
type Type interface {
	// Accept checks whether a specific value is accepted by this type.
	Accept(value any) bool
	// AsOption accesses this type as an option.  If this type is not an
	// option, then this returns nil.
	AsOption() *OptionType
	// AsUnion accesses this type as a union.  If this type is not a union,
	// then this returns nil.
	AsUnion() *UnionType
	// AsNotRequired accesses this type as a not-required wrapper.  If this
	// type is not such a wrapper, then this returns nil.
	AsNotRequired() *NotRequiredType
	// Nullable checks whether this type accepts the null marker.
	Nullable() bool
	// Equal checks whether this type is equal to another.  Union equality is
	// order-insensitive over its members.
	Equal(Type) bool
	// Produce a string representation of this type.
	String() string
}

// Accepts checks whether a given value is accepted by a given type, treating
// the frame.Any sentinel as a member of every type.  The engine routes all
// per-value checks through here so that partially-specified test frames
// validate cleanly.
func Accepts(t Type, value any) bool {
	return frame.IsAny(value) || t.Accept(value)
}

// Convenience instances for the primitive types.
var (
	// Int is the type of integer values.
	Int Type = &IntType{}
	// Float is the type of floating-point values.
	Float Type = &FloatType{}
	// String is the type of string values.
	String Type = &StringType{}
	// Bool is the type of boolean values.
	Bool Type = &BoolType{}
	// Timestamp is the type of time.Time values.
	Timestamp Type = &TimestampType{}
	// Null is the type holding only the null marker.  Its primary purpose
	// is as a union member, where it is factored out into the union's
	// nullable flag (mirroring a None member in a declared union).
	Null Type = &nullType{}
)

// ============================================================================
// Primitives
// ============================================================================

// IntType is the type of integer values.  A float whose fractional part is
// exactly zero is also accepted, since common interchange formats (JSON in
// particular) cannot distinguish 25 from 25.0.  Floats with a non-zero
// fractional part, NaN and the infinities are rejected.
type IntType struct{}

// Accept determines whether a given value is an element of this type.
func (p *IntType) Accept(value any) bool {
	_, ok := frame.AsInt(value)
	return ok
}

// AsOption accesses this type as an option (which it is not).
func (p *IntType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *IntType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *IntType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *IntType) Nullable() bool { return false }

// Equal checks whether this type is equal to another.
func (p *IntType) Equal(other Type) bool {
	_, ok := other.(*IntType)
	return ok
}

func (p *IntType) String() string { return "int" }

// FloatType is the type of floating-point values.  Integer values are also
// accepted, since they embed into floats.
type FloatType struct{}

// Accept determines whether a given value is an element of this type.
func (p *FloatType) Accept(value any) bool {
	_, ok := frame.AsFloat(value)
	return ok
}

// AsOption accesses this type as an option (which it is not).
func (p *FloatType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *FloatType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *FloatType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *FloatType) Nullable() bool { return false }

// Equal checks whether this type is equal to another.
func (p *FloatType) Equal(other Type) bool {
	_, ok := other.(*FloatType)
	return ok
}

func (p *FloatType) String() string { return "float" }

// StringType is the type of string values.
type StringType struct{}

// Accept determines whether a given value is an element of this type.
func (p *StringType) Accept(value any) bool {
	return frame.KindOf(value) == frame.StringKind
}

// AsOption accesses this type as an option (which it is not).
func (p *StringType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *StringType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *StringType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *StringType) Nullable() bool { return false }

// Equal checks whether this type is equal to another.
func (p *StringType) Equal(other Type) bool {
	_, ok := other.(*StringType)
	return ok
}

func (p *StringType) String() string { return "str" }

// BoolType is the type of boolean values.
type BoolType struct{}

// Accept determines whether a given value is an element of this type.
func (p *BoolType) Accept(value any) bool {
	return frame.KindOf(value) == frame.BoolKind
}

// AsOption accesses this type as an option (which it is not).
func (p *BoolType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *BoolType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *BoolType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *BoolType) Nullable() bool { return false }

// Equal checks whether this type is equal to another.
func (p *BoolType) Equal(other Type) bool {
	_, ok := other.(*BoolType)
	return ok
}

func (p *BoolType) String() string { return "bool" }

// TimestampType is the type of time.Time values.
type TimestampType struct{}

// Accept determines whether a given value is an element of this type.
func (p *TimestampType) Accept(value any) bool {
	return frame.KindOf(value) == frame.TimestampKind
}

// AsOption accesses this type as an option (which it is not).
func (p *TimestampType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *TimestampType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *TimestampType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *TimestampType) Nullable() bool { return false }

// Equal checks whether this type is equal to another.
func (p *TimestampType) Equal(other Type) bool {
	_, ok := other.(*TimestampType)
	return ok
}

func (p *TimestampType) String() string { return "timestamp" }

// nullType holds only the null marker.  See Null above.
type nullType struct{}

func (p *nullType) Accept(value any) bool           { return frame.IsNull(value) }
func (p *nullType) AsOption() *OptionType           { return nil }
func (p *nullType) AsUnion() *UnionType             { return nil }
func (p *nullType) AsNotRequired() *NotRequiredType { return nil }
func (p *nullType) Nullable() bool                  { return true }

func (p *nullType) Equal(other Type) bool {
	_, ok := other.(*nullType)
	return ok
}

func (p *nullType) String() string { return "none" }

// NativeType represents a backend-native type identified by an opaque tag.
// A value is accepted when its runtime kind names the tag, so a column whose
// declared tag is generic but whose values are mixed is still checked value
// by value.
type NativeType struct {
	// Tag identifying the backend type.
	Tag string
}

// NewNative constructs a backend-native type for a given tag.
func NewNative(tag string) *NativeType {
	return &NativeType{tag}
}

// Accept determines whether a given value is an element of this type.
func (p *NativeType) Accept(value any) bool {
	return frame.KindOf(value).String() == p.Tag
}

// AsOption accesses this type as an option (which it is not).
func (p *NativeType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *NativeType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *NativeType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *NativeType) Nullable() bool { return false }

// Equal checks whether this type is equal to another.
func (p *NativeType) Equal(other Type) bool {
	if o, ok := other.(*NativeType); ok {
		return p.Tag == o.Tag
	}
	//
	return false
}

func (p *NativeType) String() string {
	return fmt.Sprintf("native(%s)", p.Tag)
}

// ============================================================================
// Option
// ============================================================================

// OptionType wraps an inner type, additionally accepting the null marker.
// Options are canonical: the inner type is never itself an option or a
// union (those collapse during construction).
type OptionType struct {
	// Inner is the type of non-null values.
	Inner Type
}

// NewOption constructs the option of a given type.  Nested options collapse,
// and the option of a union folds into the union's nullable flag.
func NewOption(inner Type) Type {
	switch t := inner.(type) {
	case *OptionType:
		return t
	case *UnionType:
		return &UnionType{t.Members, true}
	case *nullType:
		return t
	}
	//
	return &OptionType{inner}
}

// Accept determines whether a given value is an element of this type.
func (p *OptionType) Accept(value any) bool {
	return frame.IsNull(value) || p.Inner.Accept(value)
}

// AsOption accesses this type as an option (which it is).
func (p *OptionType) AsOption() *OptionType { return p }

// AsUnion accesses this type as a union (which it is not).
func (p *OptionType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *OptionType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *OptionType) Nullable() bool { return true }

// Equal checks whether this type is equal to another.
func (p *OptionType) Equal(other Type) bool {
	if o, ok := other.(*OptionType); ok {
		return p.Inner.Equal(o.Inner)
	}
	//
	return false
}

func (p *OptionType) String() string {
	return fmt.Sprintf("option(%s)", p.Inner.String())
}

// ============================================================================
// Union
// ============================================================================

// UnionType accepts any value accepted by at least one of its members.
// Unions are canonical: nested unions are flattened, duplicate members are
// removed, and null admission (a None member, or an option member) is
// factored out into the nullable flag.  Member order is retained purely for
// deterministic error messages; equality is order-insensitive.
type UnionType struct {
	// Members of this union, none of which is itself a union, an option or
	// the null type.
	Members []Type
	// IsNullable indicates whether the null marker is accepted.
	IsNullable bool
}

// NewUnion constructs the union of the given types, normalising as described
// above.  A union which normalises to a single non-nullable member collapses
// to that member, and a single nullable member collapses to its option.
func NewUnion(members ...Type) Type {
	var (
		flat     []Type
		nullable = false
	)
	//
	for _, m := range members {
		switch t := m.(type) {
		case *nullType:
			nullable = true
		case *OptionType:
			nullable = true
			flat = appendMember(flat, t.Inner)
		case *UnionType:
			nullable = nullable || t.IsNullable
			for _, inner := range t.Members {
				flat = appendMember(flat, inner)
			}
		default:
			flat = appendMember(flat, m)
		}
	}
	// Collapse degenerate unions into their canonical forms.
	switch {
	case len(flat) == 1 && !nullable:
		return flat[0]
	case len(flat) == 1 && nullable:
		return NewOption(flat[0])
	}
	//
	return &UnionType{flat, nullable}
}

func appendMember(members []Type, m Type) []Type {
	for _, existing := range members {
		if existing.Equal(m) {
			return members
		}
	}
	//
	return append(members, m)
}

// Accept determines whether a given value is an element of this type.
func (p *UnionType) Accept(value any) bool {
	if frame.IsNull(value) {
		return p.IsNullable
	}
	//
	for _, m := range p.Members {
		if m.Accept(value) {
			return true
		}
	}
	//
	return false
}

// AsOption accesses this type as an option (which it is not).
func (p *UnionType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is).
func (p *UnionType) AsUnion() *UnionType { return p }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *UnionType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *UnionType) Nullable() bool { return p.IsNullable }

// Equal checks whether this type is equal to another.  Members compare as an
// unordered set.
func (p *UnionType) Equal(other Type) bool {
	o, ok := other.(*UnionType)
	if !ok || p.IsNullable != o.IsNullable || len(p.Members) != len(o.Members) {
		return false
	}
	// Members are deduplicated, so one-directional containment suffices.
	for _, m := range p.Members {
		if !containsType(o.Members, m) {
			return false
		}
	}
	//
	return true
}

func containsType(members []Type, t Type) bool {
	for _, m := range members {
		if m.Equal(t) {
			return true
		}
	}
	//
	return false
}

func (p *UnionType) String() string {
	var names []string
	//
	for _, m := range p.Members {
		names = append(names, m.String())
	}
	//
	if p.IsNullable {
		names = append(names, "none")
	}
	//
	return fmt.Sprintf("union(%s)", strings.Join(names, ", "))
}

// ============================================================================
// Literal
// ============================================================================

// LiteralType accepts exactly the values in a fixed scalar set.  Membership
// is decided by value (cross-kind numeric equality included), not identity.
type LiteralType struct {
	// Values admitted by this type.
	Values []any
}

// NewLiteral constructs a literal type over the given scalar values,
// removing duplicates.
func NewLiteral(values ...any) *LiteralType {
	var distinct []any
	//
	for _, v := range values {
		if !containsValue(distinct, v) {
			distinct = append(distinct, v)
		}
	}
	//
	return &LiteralType{distinct}
}

// Accept determines whether a given value is an element of this type.
func (p *LiteralType) Accept(value any) bool {
	return containsValue(p.Values, value)
}

// AsOption accesses this type as an option (which it is not).
func (p *LiteralType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *LiteralType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is not).
func (p *LiteralType) AsNotRequired() *NotRequiredType { return nil }

// Nullable checks whether this type accepts the null marker.
func (p *LiteralType) Nullable() bool {
	return containsValue(p.Values, nil)
}

// Equal checks whether this type is equal to another.  Values compare as an
// unordered set.
func (p *LiteralType) Equal(other Type) bool {
	o, ok := other.(*LiteralType)
	if !ok || len(p.Values) != len(o.Values) {
		return false
	}
	//
	for _, v := range p.Values {
		if !containsValue(o.Values, v) {
			return false
		}
	}
	//
	return true
}

func (p *LiteralType) String() string {
	var names []string
	//
	for _, v := range p.Values {
		names = append(names, fmt.Sprintf("%v", v))
	}
	//
	return fmt.Sprintf("literal(%s)", strings.Join(names, ", "))
}

func containsValue(values []any, v any) bool {
	for _, existing := range values {
		if frame.ValueEqual(existing, v) {
			return true
		}
	}
	//
	return false
}

// ============================================================================
// NotRequired
// ============================================================================

// NotRequiredType marks a field as optional-to-be-present: a dataset lacking
// the column entirely still satisfies the field.  This is distinct from
// nullability, which concerns values within a present column.  The wrapper
// is only legal as the outermost constructor of a field's declared type; the
// schema builder rejects anything else.
type NotRequiredType struct {
	// Inner type, applied whenever the column is present.
	Inner Type
}

// NewNotRequired constructs the not-required wrapper of a given type.  The
// wrapper is idempotent (it never nests inside itself).
func NewNotRequired(inner Type) *NotRequiredType {
	if t, ok := inner.(*NotRequiredType); ok {
		return t
	}
	//
	return &NotRequiredType{inner}
}

// Accept determines whether a given value is an element of this type.
// Presence is handled by the matcher, so acceptance simply delegates to the
// inner type.
func (p *NotRequiredType) Accept(value any) bool {
	return p.Inner.Accept(value)
}

// AsOption accesses this type as an option (which it is not).
func (p *NotRequiredType) AsOption() *OptionType { return nil }

// AsUnion accesses this type as a union (which it is not).
func (p *NotRequiredType) AsUnion() *UnionType { return nil }

// AsNotRequired accesses this type as a not-required wrapper (which it is).
func (p *NotRequiredType) AsNotRequired() *NotRequiredType { return p }

// Nullable checks whether this type accepts the null marker.
func (p *NotRequiredType) Nullable() bool { return p.Inner.Nullable() }

// Equal checks whether this type is equal to another.
func (p *NotRequiredType) Equal(other Type) bool {
	if o, ok := other.(*NotRequiredType); ok {
		return p.Inner.Equal(o.Inner)
	}
	//
	return false
}

func (p *NotRequiredType) String() string {
	return fmt.Sprintf("notrequired(%s)", p.Inner.String())
}

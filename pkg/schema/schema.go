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

// Package schema implements structural schema validation for tabular
// datasets.  A schema is an ordered set of named, typed field declarations,
// each optionally carrying a chain of validators; a dataset (viewed through
// pkg/frame) conforms when every declared field has a compatible column and
// all attached validators hold.  Compatibility is purely structural: the
// dataset never declares which schema it implements, and columns the schema
// does not name are invisible.
package schema

import (
	"github.com/consensys/go-framecheck/pkg/frame"
	"github.com/consensys/go-framecheck/pkg/schema/constraint"
)

// FieldSpec declares a single schema field: a name, a column type and an
// ordered chain of validators applied after the type matches.  Field specs
// are immutable once their enclosing schema is built.
type FieldSpec struct {
	// Name of the column this field binds to.
	Name string
	// Type constraining the column's values.
	Type Type
	// Validators applied, in order, to every value of the column.
	Validators []constraint.Constraint
}

// Required checks whether a dataset must supply a column for this field.
func (p FieldSpec) Required() bool {
	return p.Type.AsNotRequired() == nil
}

// SchemaSpec is an ordered mapping of field name to field spec, with unique
// names.  Specs are built once (via Builder) and then shared read-only
// across any number of validations.
//
//nolint:revive
type SchemaSpec struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// Name returns the declared name of this schema.
func (p *SchemaSpec) Name() string {
	return p.name
}

// Fields returns the fields of this schema in declaration order.
func (p *SchemaSpec) Fields() []FieldSpec {
	return p.fields
}

// Field looks up a field by name, returning false if the schema does not
// declare it.
func (p *SchemaSpec) Field(name string) (FieldSpec, bool) {
	if i, ok := p.index[name]; ok {
		return p.fields[i], true
	}
	//
	return FieldSpec{}, false
}

// Width returns the number of fields declared by this schema.
func (p *SchemaSpec) Width() uint {
	return uint(len(p.fields))
}

// Builder accumulates field declarations and produces an immutable
// SchemaSpec, checking the declaration-time invariants: unique field names,
// well-formed type expressions and NotRequired only as the outermost
// wrapper.
type Builder struct {
	name   string
	fields []FieldSpec
}

// NewBuilder constructs an empty builder for a schema with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Field appends a field declaration with the given validators (applied in
// the order given).
func (p *Builder) Field(name string, t Type, validators ...constraint.Constraint) *Builder {
	p.fields = append(p.fields, FieldSpec{name, t, validators})
	return p
}

// Build checks the accumulated declarations and produces the schema spec.
// Malformed declarations are reported as a *SchemaDefinitionError.
func (p *Builder) Build() (*SchemaSpec, error) {
	index := make(map[string]int, len(p.fields))
	//
	for i, f := range p.fields {
		if f.Name == "" {
			return nil, definitionError(p.name, f.Name, "field with empty name")
		} else if _, ok := index[f.Name]; ok {
			return nil, definitionError(p.name, f.Name, "duplicate field")
		} else if err := checkWellFormed(p.name, f.Name, f.Type, true); err != nil {
			return nil, err
		}
		//
		index[f.Name] = i
	}
	//
	return &SchemaSpec{p.name, p.fields, index}, nil
}

// MustBuild is like Build, but panics on a malformed schema.
func (p *Builder) MustBuild() *SchemaSpec {
	spec, err := p.Build()
	if err != nil {
		panic(err)
	}
	//
	return spec
}

// checkWellFormed walks a type expression checking the construction rules of
// the algebra.  Outermost indicates whether this is the outermost
// constructor of a field's declared type (where, alone, NotRequired is
// legal).
func checkWellFormed(schema, field string, t Type, outermost bool) error {
	switch t := t.(type) {
	case nil:
		return definitionError(schema, field, "field has no type")
	case *NotRequiredType:
		if !outermost {
			return definitionError(schema, field, "notrequired must be the outermost wrapper")
		}
		//
		return checkWellFormed(schema, field, t.Inner, false)
	case *OptionType:
		return checkWellFormed(schema, field, t.Inner, false)
	case *UnionType:
		if len(t.Members) == 0 {
			return definitionError(schema, field, "union has no members")
		}
		//
		for _, m := range t.Members {
			if err := checkWellFormed(schema, field, m, false); err != nil {
				return err
			}
		}
	case *LiteralType:
		if len(t.Values) == 0 {
			return definitionError(schema, field, "literal has no values")
		}
		//
		for _, v := range t.Values {
			if kind := frame.KindOf(v); kind == frame.UnknownKind || kind == frame.AnyKind {
				return definitionError(schema, field, "literal value is not a scalar")
			}
		}
	case *NativeType:
		if t.Tag == "" {
			return definitionError(schema, field, "native type with empty tag")
		}
	}
	//
	return nil
}

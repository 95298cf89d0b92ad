package schema

import (
	"testing"

	"github.com/consensys/go-framecheck/pkg/frame"
	"github.com/consensys/go-framecheck/pkg/schema/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderPreservesDeclarationOrder(t *testing.T) {
	spec := NewBuilder("user").
		Field("name", String).
		Field("age", Int, constraint.Range(0, 150)).
		Field("email", NewOption(String)).
		MustBuild()
	//
	require.Equal(t, uint(3), spec.Width())
	assert.Equal(t, "user", spec.Name())
	//
	var names []string
	for _, f := range spec.Fields() {
		names = append(names, f.Name)
	}
	//
	assert.Equal(t, []string{"name", "age", "email"}, names)
	//
	age, ok := spec.Field("age")
	require.True(t, ok)
	assert.Len(t, age.Validators, 1)
	//
	_, ok = spec.Field("missing")
	assert.False(t, ok)
}

func TestBuilderRejectsMalformedSchemas(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{
			"duplicate field",
			NewBuilder("s").Field("x", Int).Field("x", String),
		},
		{
			"empty field name",
			NewBuilder("s").Field("", Int),
		},
		{
			"missing type",
			NewBuilder("s").Field("x", nil),
		},
		{
			"notrequired inside option",
			NewBuilder("s").Field("x", &OptionType{NewNotRequired(Int)}),
		},
		{
			"notrequired inside union",
			NewBuilder("s").Field("x", &UnionType{[]Type{Int, NewNotRequired(String)}, false}),
		},
		{
			"empty union",
			NewBuilder("s").Field("x", &UnionType{nil, true}),
		},
		{
			"empty literal",
			NewBuilder("s").Field("x", &LiteralType{}),
		},
		{
			"native with empty tag",
			NewBuilder("s").Field("x", NewNative("")),
		},
		{
			"non-scalar literal value",
			NewBuilder("s").Field("x", &LiteralType{[]any{[]int{1}}}),
		},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.IsType(t, &SchemaDefinitionError{}, err)
		})
	}
}

func TestBuilderAcceptsOutermostNotRequired(t *testing.T) {
	_, err := NewBuilder("s").
		Field("x", NewNotRequired(NewUnion(Int, Float))).
		Build()
	//
	assert.NoError(t, err)
}

func TestForTestFillsUnspecifiedColumns(t *testing.T) {
	spec := NewBuilder("user").
		Field("name", String).
		Field("age", Int, constraint.Range(0, 150)).
		MustBuild()
	//
	f, err := ForTest(spec, map[string][]any{"age": {int64(25), int64(30)}})
	require.NoError(t, err)
	require.Equal(t, uint(2), f.Height())
	// Unspecified columns are filled with the Any sentinel
	name, ok := f.Column("name")
	require.True(t, ok)
	assert.True(t, frame.IsAny(name.Get(0)))
	// The resulting frame validates against the schema
	assert.True(t, Validate(spec, f).Ok())
}

func TestForTestRejectsBadInput(t *testing.T) {
	spec := NewBuilder("user").Field("name", String).MustBuild()
	//
	_, err := ForTest(spec, map[string][]any{})
	assert.Error(t, err, "empty data")
	//
	_, err = ForTest(spec, map[string][]any{"nope": {int64(1)}})
	assert.ErrorContains(t, err, "unknown columns")
}

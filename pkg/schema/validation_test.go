package schema

import (
	"testing"

	"github.com/consensys/go-framecheck/pkg/frame"
	"github.com/consensys/go-framecheck/pkg/schema/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFrame(t *testing.T, columns map[string][]any, order ...string) *frame.ArrayFrame {
	t.Helper()
	//
	cols := make([]frame.Column, len(order))
	for i, name := range order {
		cols[i] = frame.NewColumn(name, columns[name])
	}
	//
	f, err := frame.FromColumns(cols...)
	require.NoError(t, err)
	//
	return f
}

func TestMissingColumnsReported(t *testing.T) {
	spec := NewBuilder("s").
		Field("a", Int).
		Field("b", String).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"unrelated": {int64(1)}}, "unrelated")
	report := Validate(spec, f)
	//
	assert.False(t, report.Ok())
	require.Len(t, report.Fields, 2)
	// Every required field is Missing; report order mirrors declaration order.
	assert.Equal(t, "a", report.Fields[0].Field)
	assert.IsType(t, &MissingColumn{}, report.Fields[0].Outcome)
	assert.Equal(t, "b", report.Fields[1].Field)
	assert.IsType(t, &MissingColumn{}, report.Fields[1].Outcome)
}

func TestExtraColumnsAreInvisible(t *testing.T) {
	spec := NewBuilder("s").Field("a", Int).MustBuild()
	//
	with := mustFrame(t, map[string][]any{
		"a":     {int64(1), int64(2)},
		"extra": {"x", "y"},
	}, "a", "extra")
	without := mustFrame(t, map[string][]any{
		"a": {int64(1), int64(2)},
	}, "a")
	// Validation result is invariant under adding/removing unrelated columns.
	assert.Equal(t, Validate(spec, without), Validate(spec, with))
	assert.True(t, Validate(spec, with).Ok())
}

func TestUnionTypeMatching(t *testing.T) {
	spec := NewBuilder("s").Field("v", NewUnion(Int, String)).MustBuild()
	//
	tests := []struct {
		name   string
		values []any
		ok     bool
	}{
		{"only ints", []any{int64(1), int64(2)}, true},
		{"only strings", []any{"a", "b"}, true},
		{"mixed ints and strings", []any{int64(1), "b", int64(3)}, true},
		{"fractional float fails", []any{int64(1), 2.5}, false},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFrame(t, map[string][]any{"v": tt.values}, "v")
			report := Validate(spec, f)
			//
			assert.Equal(t, tt.ok, report.Ok())
			//
			if !tt.ok {
				assert.IsType(t, &TypeMismatch{}, report.Fields[0].Outcome)
			}
		})
	}
}

func TestNullableUnionAdmitsNulls(t *testing.T) {
	var (
		nullable = NewBuilder("s").Field("v", NewUnion(Int, String, Null)).MustBuild()
		plain    = NewBuilder("s").Field("v", NewUnion(Int, String)).MustBuild()
		f        = mustFrame(t, map[string][]any{"v": {int64(1), nil, "a"}}, "v")
	)
	//
	assert.True(t, Validate(nullable, f).Ok())
	// Without the none member, any null entry is a type mismatch.
	report := Validate(plain, f)
	require.False(t, report.Ok())
	//
	mismatch, ok := report.Fields[0].Outcome.(*TypeMismatch)
	require.True(t, ok)
	assert.Equal(t, uint(1), mismatch.Row)
	assert.Nil(t, mismatch.Value)
}

func TestTypeMismatchNamesFirstOffendingValue(t *testing.T) {
	spec := NewBuilder("s").Field("v", Int).MustBuild()
	f := mustFrame(t, map[string][]any{"v": {int64(1), "x", "y"}}, "v")
	//
	report := Validate(spec, f)
	require.False(t, report.Ok())
	//
	mismatch, ok := report.Fields[0].Outcome.(*TypeMismatch)
	require.True(t, ok)
	assert.Equal(t, uint(1), mismatch.Row)
	assert.Equal(t, "x", mismatch.Value)
}

func TestNotRequiredFields(t *testing.T) {
	spec := NewBuilder("s").
		Field("a", Int).
		Field("b", NewNotRequired(String)).
		MustBuild()
	// Absent not-required column passes
	f := mustFrame(t, map[string][]any{"a": {int64(1)}}, "a")
	assert.True(t, Validate(spec, f).Ok())
	// Present not-required column is checked against the inner type
	f = mustFrame(t, map[string][]any{
		"a": {int64(1)},
		"b": {int64(2)},
	}, "a", "b")
	report := Validate(spec, f)
	require.False(t, report.Ok())
	assert.IsType(t, &TypeMismatch{}, report.Fields[1].Outcome)
}

func TestConstraintCheckingIsExhaustive(t *testing.T) {
	spec := NewBuilder("s").
		Field("age", Int, constraint.Range(0, 150)).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"age": {int64(25), int64(200), int64(30)}}, "age")
	report := Validate(spec, f)
	require.False(t, report.Ok())
	//
	violations, ok := report.Fields[0].Outcome.(*ConstraintViolations)
	require.True(t, ok)
	// Row 1 is the sole violation; rows 0 and 2 are not reported.
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, uint(1), violations.Violations[0].Row)
}

func TestConstraintViolationsAcrossValidators(t *testing.T) {
	spec := NewBuilder("s").
		Field("code", String, constraint.MinLen(2), constraint.MustRegex("[a-z]+")).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"code": {"ab", "X", "ok"}}, "code")
	report := Validate(spec, f)
	require.False(t, report.Ok())
	//
	violations := report.Fields[0].Outcome.(*ConstraintViolations)
	// "X" fails both validators; ordering is validator declaration order,
	// ascending rows within each.
	require.Len(t, violations.Violations, 2)
	assert.Equal(t, uint(1), violations.Violations[0].Row)
	assert.Equal(t, uint(1), violations.Violations[1].Row)
	assert.NotEqual(t, violations.Violations[0].Description, violations.Violations[1].Description)
}

func TestNullsExemptFromValidatorsWhenTypePermits(t *testing.T) {
	spec := NewBuilder("s").
		Field("age", NewOption(Int), constraint.Range(0, 150)).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"age": {int64(25), nil, int64(30)}}, "age")
	assert.True(t, Validate(spec, f).Ok())
}

func TestUniqueValidator(t *testing.T) {
	spec := NewBuilder("s").
		Field("id", Int, constraint.Unique()).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"id": {int64(1), int64(2), int64(2), int64(3)}}, "id")
	report := Validate(spec, f)
	require.False(t, report.Ok())
	//
	violations := report.Fields[0].Outcome.(*ConstraintViolations)
	// Both rows of the duplicate group are reported.
	require.Len(t, violations.Violations, 2)
	assert.Equal(t, uint(1), violations.Violations[0].Row)
	assert.Equal(t, uint(2), violations.Violations[1].Row)
}

func TestValidationIsIdempotent(t *testing.T) {
	spec := NewBuilder("s").
		Field("a", Int, constraint.Range(0, 10)).
		Field("b", String).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"a": {int64(99)}}, "a")
	//
	assert.Equal(t, Validate(spec, f), Validate(spec, f))
}

func TestAggregatedErrorScenario(t *testing.T) {
	// schema {name: str, age: int + Range(0,150)} against
	// {name: ["Charlie"], age: [200]}
	spec := NewBuilder("person").
		Field("name", String).
		Field("age", Int, constraint.Range(0, 150)).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{
		"name": {"Charlie"},
		"age":  {int64(200)},
	}, "name", "age")
	//
	report := Validate(spec, f)
	require.False(t, report.Ok())
	assert.True(t, report.Fields[0].IsOk())
	//
	violations, ok := report.Fields[1].Outcome.(*ConstraintViolations)
	require.True(t, ok)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, uint(0), violations.Violations[0].Row)
	// The aggregated error names the field and the offending row
	err := report.Error()
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "row 0")
	// Assert surfaces the same thing directly
	assert.Equal(t, err, Assert(spec, f))
}

func TestStrictModeReportsUnknownColumns(t *testing.T) {
	spec := NewBuilder("s").Field("a", Int).MustBuild()
	f := mustFrame(t, map[string][]any{
		"a":     {int64(1)},
		"extra": {"x"},
	}, "a", "extra")
	//
	assert.True(t, Validate(spec, f).Ok())
	//
	report := ValidateWith(spec, f, Options{Strict: true})
	require.False(t, report.Ok())
	require.Len(t, report.Fields, 2)
	assert.IsType(t, &UnknownColumn{}, report.Fields[1].Outcome)
}

func TestEmptyFramePassesTypeChecks(t *testing.T) {
	spec := NewBuilder("s").
		Field("a", Int, constraint.Range(0, 10)).
		MustBuild()
	//
	f := mustFrame(t, map[string][]any{"a": {}}, "a")
	assert.True(t, Validate(spec, f).Ok())
}

package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		kind  Kind
	}{
		{nil, NullKind},
		{int64(1), IntKind},
		{uint8(1), IntKind},
		{1.5, FloatKind},
		{"x", StringKind},
		{true, BoolKind},
		{time.Unix(0, 0), TimestampKind},
		{Any, AnyKind},
		{[]int{1}, UnknownKind},
	}
	//
	for _, tt := range tests {
		assert.Equal(t, tt.kind, KindOf(tt.value), "KindOf(%v)", tt.value)
	}
}

func TestAsInt(t *testing.T) {
	i, ok := AsInt(int32(7))
	require.True(t, ok)
	assert.Equal(t, int64(7), i)
	// Integral floats convert
	i, ok = AsInt(float64(25.0))
	require.True(t, ok)
	assert.Equal(t, int64(25), i)
	// Fractional floats do not
	_, ok = AsInt(25.5)
	assert.False(t, ok)
	//
	_, ok = AsInt("25")
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, ValueEqual(int64(1), float64(1)))
	assert.True(t, ValueEqual("a", "a"))
	assert.False(t, ValueEqual(int64(1), "1"))
	assert.False(t, ValueEqual(nil, int64(0)))
	assert.True(t, ValueEqual(nil, nil))
}

func TestColumnTagInference(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		tag    string
	}{
		{"uniform ints", []any{int64(1), int64(2)}, "int"},
		{"ints with nulls", []any{int64(1), nil}, "int"},
		{"mixed kinds", []any{int64(1), "a"}, ObjectTag},
		{"all null", []any{nil, nil}, ObjectTag},
		{"strings", []any{"a", "b"}, "string"},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, NewColumn("c", tt.values).Tag())
		})
	}
}

func TestFromColumnsRejectsBadShapes(t *testing.T) {
	a := NewColumn("a", []any{int64(1)})
	a2 := NewColumn("a", []any{int64(2)})
	long := NewColumn("b", []any{int64(1), int64(2)})
	//
	_, err := FromColumns(a, a2)
	assert.ErrorContains(t, err, "duplicate column")
	//
	_, err = FromColumns(a, long)
	assert.ErrorContains(t, err, "height")
}

func TestFrameLookupPreservesOrder(t *testing.T) {
	f, err := FromColumns(
		NewColumn("x", []any{int64(1)}),
		NewColumn("y", []any{"a"}),
	)
	require.NoError(t, err)
	//
	require.Equal(t, uint(1), f.Height())
	assert.Equal(t, "x", f.Columns()[0].Name())
	assert.Equal(t, "y", f.Columns()[1].Name())
	//
	col, ok := f.Column("y")
	require.True(t, ok)
	assert.Equal(t, "a", col.Get(0))
	//
	_, ok = f.Column("z")
	assert.False(t, ok)
}

package schema

import (
	"testing"
	"time"

	"github.com/consensys/go-framecheck/pkg/frame"
	"github.com/stretchr/testify/assert"
)

func TestPrimitiveAcceptance(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		value    any
		accepted bool
	}{
		{"int accepts int", Int, int64(5), true},
		{"int accepts plain int", Int, 5, true},
		{"int accepts uint", Int, uint32(5), true},
		{"int accepts integral float", Int, float64(25.0), true},
		{"int rejects fractional float", Int, 25.5, false},
		{"int rejects string", Int, "5", false},
		{"int rejects bool", Int, true, false},
		{"int rejects null", Int, nil, false},
		{"float accepts float", Float, 2.5, true},
		{"float accepts int", Float, int64(2), true},
		{"float rejects string", Float, "2.5", false},
		{"str accepts string", String, "hello", true},
		{"str rejects int", String, int64(1), false},
		{"bool accepts bool", Bool, false, true},
		{"bool rejects int", Bool, int64(0), false},
		{"timestamp accepts time", Timestamp, time.Unix(0, 0), true},
		{"timestamp rejects string", Timestamp, "1970-01-01", false},
		{"none accepts null", Null, nil, true},
		{"none rejects int", Null, int64(0), false},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.accepted, tt.typ.Accept(tt.value))
		})
	}
}

func TestAnySentinelAcceptedEverywhere(t *testing.T) {
	types := []Type{
		Int, Float, String, Bool, Timestamp,
		NewOption(Int),
		NewUnion(Int, String),
		NewLiteral("a", "b"),
		NewNotRequired(Int),
		NewNative("timestamp"),
	}
	//
	for _, typ := range types {
		assert.True(t, Accepts(typ, frame.Any), "Any should be accepted by %s", typ.String())
	}
}

func TestOptionAcceptsNull(t *testing.T) {
	opt := NewOption(Int)
	//
	assert.True(t, opt.Accept(nil))
	assert.True(t, opt.Accept(int64(1)))
	assert.False(t, opt.Accept("x"))
	assert.True(t, opt.Nullable())
	assert.False(t, Int.Nullable())
}

func TestOptionNormalisation(t *testing.T) {
	// Nested options collapse
	assert.True(t, NewOption(NewOption(Int)).Equal(NewOption(Int)))
	// Option over a union folds into the nullable flag
	ou := NewOption(NewUnion(Int, String))
	union := ou.AsUnion()
	assert.NotNil(t, union)
	assert.True(t, union.IsNullable)
}

func TestUnionNormalisation(t *testing.T) {
	t.Run("flattens nested unions", func(t *testing.T) {
		u := NewUnion(NewUnion(Int, String), Float).AsUnion()
		assert.NotNil(t, u)
		assert.Len(t, u.Members, 3)
	})
	//
	t.Run("removes duplicates", func(t *testing.T) {
		u := NewUnion(Int, String, Int).AsUnion()
		assert.NotNil(t, u)
		assert.Len(t, u.Members, 2)
	})
	//
	t.Run("hoists none into nullable", func(t *testing.T) {
		u := NewUnion(Int, String, Null).AsUnion()
		assert.NotNil(t, u)
		assert.Len(t, u.Members, 2)
		assert.True(t, u.IsNullable)
	})
	//
	t.Run("hoists option members into nullable", func(t *testing.T) {
		u := NewUnion(NewOption(Int), String).AsUnion()
		assert.NotNil(t, u)
		assert.True(t, u.IsNullable)
		assert.Len(t, u.Members, 2)
	})
	//
	t.Run("single member collapses to member", func(t *testing.T) {
		assert.True(t, NewUnion(Int).Equal(Int))
		assert.Nil(t, NewUnion(Int, Int).AsUnion())
	})
	//
	t.Run("single nullable member collapses to option", func(t *testing.T) {
		assert.True(t, NewUnion(Int, Null).Equal(NewOption(Int)))
	})
}

func TestUnionEqualityIsOrderInsensitive(t *testing.T) {
	a := NewUnion(Int, String)
	b := NewUnion(String, Int)
	c := NewUnion(Int, String, Null)
	//
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c), "nullable unions differ from non-nullable ones")
}

func TestUnionAcceptance(t *testing.T) {
	var (
		u  = NewUnion(Int, String)
		un = NewUnion(Int, String, Null)
	)
	//
	assert.True(t, u.Accept(int64(1)))
	assert.True(t, u.Accept("a"))
	assert.False(t, u.Accept(2.5))
	assert.False(t, u.Accept(nil))
	assert.True(t, un.Accept(nil))
}

func TestLiteralAcceptance(t *testing.T) {
	lit := NewLiteral("pending", "approved", "rejected")
	//
	assert.True(t, lit.Accept("pending"))
	assert.False(t, lit.Accept("unknown"))
	assert.False(t, lit.Accept(nil))
	// Membership is by value, not identity: 1 and 1.0 coincide.
	nums := NewLiteral(int64(1), int64(2))
	assert.True(t, nums.Accept(float64(1)))
	assert.False(t, nums.Accept(float64(1.5)))
}

func TestLiteralNormalisation(t *testing.T) {
	lit := NewLiteral("a", "b", "a")
	assert.Len(t, lit.Values, 2)
	// Value sets compare order-insensitively
	assert.True(t, NewLiteral("a", "b").Equal(NewLiteral("b", "a")))
	assert.False(t, NewLiteral("a").Equal(NewLiteral("a", "b")))
}

func TestNotRequired(t *testing.T) {
	nr := NewNotRequired(Int)
	//
	assert.NotNil(t, nr.AsNotRequired())
	assert.True(t, nr.Accept(int64(1)), "acceptance delegates to the inner type")
	assert.False(t, nr.Accept(nil))
	// Never nests inside itself
	assert.True(t, NewNotRequired(nr).Equal(nr))
}

func TestNativeAcceptance(t *testing.T) {
	native := NewNative("timestamp")
	//
	assert.True(t, native.Accept(time.Unix(42, 0)))
	assert.False(t, native.Accept("2020-01-01"))
	assert.True(t, native.Equal(NewNative("timestamp")))
	assert.False(t, native.Equal(NewNative("bool")))
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Int, "int"},
		{NewOption(String), "option(str)"},
		{NewUnion(Int, String, Null), "union(int, str, none)"},
		{NewLiteral("a", "b"), "literal(a, b)"},
		{NewNotRequired(Bool), "notrequired(bool)"},
		{NewNative("timestamp"), "native(timestamp)"},
	}
	//
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.typ.String())
	}
}

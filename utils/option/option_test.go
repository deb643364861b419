package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	some := Some(42)
	none := None[int]()

	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	assert.True(t, none.IsNone())

	{
		v, ok := some.Get()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	}
	{
		_, ok := none.Get()
		assert.False(t, ok)
	}

	assert.Equal(t, 42, some.Unwrap())
	assert.Panics(t, func() { none.Unwrap() })

	assert.Equal(t, 42, some.UnwrapOr(7))
	assert.Equal(t, 7, none.UnwrapOr(7))
	assert.Equal(t, 7, none.UnwrapOrElse(func() int { return 7 }))

	// The zero value is None.
	var zero Option[string]
	assert.True(t, zero.IsNone())
}

func TestOptionFromTuple(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, Some(1), FromTuple(v, ok))

	v, ok = m["b"]
	assert.Equal(t, None[int](), FromTuple(v, ok))
}

func TestOptionTakeReplace(t *testing.T) {
	o := Some(1)

	taken := o.Take()
	assert.Equal(t, 1, taken.Unwrap())
	assert.True(t, o.IsNone())

	prev := o.Replace(2)
	assert.True(t, prev.IsNone())
	assert.Equal(t, 2, o.Unwrap())

	prev = o.Replace(3)
	assert.Equal(t, 2, prev.Unwrap())
}

func TestOptionMap(t *testing.T) {
	double := func(v int) int { return v * 2 }
	assert.Equal(t, Some(4), Map(Some(2), double))
	assert.Equal(t, None[int](), Map(None[int](), double))

	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}
	assert.Equal(t, Some(2), AndThen(Some(4), half))
	assert.Equal(t, None[int](), AndThen(Some(3), half))
	assert.Equal(t, None[int](), AndThen(None[int](), half))
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "Some(1)", Some(1).String())
	assert.Equal(t, "None", None[int]().String())
}

package objectinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingSetKeepsFirstPosition(t *testing.T) {
	var m Mapping[int]
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMappingDelete(t *testing.T) {
	m := MappingOf(Pair[int]{"a", 1}, Pair[int]{"b", 2}, Pair[int]{"c", 3})
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
	assert.Equal(t, 2, m.Len())
}

func TestMappingCloneIsIndependent(t *testing.T) {
	m := MappingOf(Pair[int]{"a", 1})
	c := m.Clone()
	c.Set("b", 2)
	c.Delete("a")

	assert.Equal(t, []string{"a"}, m.Keys())
	assert.Equal(t, []string{"b"}, c.Keys())
}

func TestMappingAllStopsEarly(t *testing.T) {
	m := MappingOf(Pair[int]{"a", 1}, Pair[int]{"b", 2}, Pair[int]{"c", 3})
	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMappingEqual(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	cases := []struct {
		name string
		a, b Mapping[int]
		want bool
	}{
		{name: "both empty", a: Mapping[int]{}, b: NewMapping[int](), want: true},
		{name: "same order", a: MappingOf(Pair[int]{"a", 1}), b: MappingOf(Pair[int]{"a", 1}), want: true},
		{
			name: "different order",
			a:    MappingOf(Pair[int]{"a", 1}, Pair[int]{"b", 2}),
			b:    MappingOf(Pair[int]{"b", 2}, Pair[int]{"a", 1}),
			want: true,
		},
		{name: "different value", a: MappingOf(Pair[int]{"a", 1}), b: MappingOf(Pair[int]{"a", 2}), want: false},
		{name: "different key", a: MappingOf(Pair[int]{"a", 1}), b: MappingOf(Pair[int]{"b", 1}), want: false},
		{name: "extra key", a: MappingOf(Pair[int]{"a", 1}), b: MappingOf(Pair[int]{"a", 1}, Pair[int]{"b", 1}), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b, eq))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a, eq))
		})
	}
}

func TestZeroMappingReads(t *testing.T) {
	var m Mapping[string]
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.Empty(t, m.Pairs())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

package objectinput

import "iter"

// Pair is a single key/value of a Mapping.
type Pair[V any] struct {
	Key   string
	Value V
}

// Mapping is a string-keyed map that remembers insertion order.
// The zero value is an empty mapping ready to use.
type Mapping[V any] struct {
	keys   []string
	values map[string]V
}

// NewMapping returns an empty mapping.
func NewMapping[V any]() Mapping[V] {
	return Mapping[V]{values: map[string]V{}}
}

// MappingOf builds a mapping from pairs in order. A repeated key keeps its
// first position and takes the last value.
func MappingOf[V any](pairs ...Pair[V]) Mapping[V] {
	m := Mapping[V]{values: make(map[string]V, len(pairs))}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set appends key at the end, or replaces its value in place if present.
func (m *Mapping[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = map[string]V{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. Missing keys are ignored.
func (m *Mapping[V]) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m Mapping[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m Mapping[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m Mapping[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m Mapping[V]) Keys() []string {
	if len(m.keys) == 0 {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates pairs in order.
func (m Mapping[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Pairs returns the pairs in order.
func (m Mapping[V]) Pairs() []Pair[V] {
	out := make([]Pair[V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Pair[V]{Key: k, Value: m.values[k]})
	}
	return out
}

// Clone copies the key order and the top-level values. Values themselves are
// not deep copied.
func (m Mapping[V]) Clone() Mapping[V] {
	out := Mapping[V]{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]V, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether both mappings hold the same keys with equal values.
// Key order does not take part in the comparison.
func (m Mapping[V]) Equal(other Mapping[V], eq func(a, b V) bool) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for k, v := range m.values {
		ov, ok := other.values[k]
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

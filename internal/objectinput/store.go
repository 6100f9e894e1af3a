package objectinput

// ID identifies an entry for its whole lifetime. It is never derived from the
// entry key, so renaming a row keeps its identity.
type ID string

// Entry is one editable row. Unset marks a row whose value was never
// assigned; such a row stays out of the canonical mapping until it is.
type Entry[V any] struct {
	ID    ID
	Key   string
	Value V
	Unset bool
}

// Store holds the ordered entry list and mutates entries by identity.
// Every operation is total: an unknown id is ignored.
type Store[V any] struct {
	entries []Entry[V]
}

// SetEntries replaces the whole sequence.
func (s *Store[V]) SetEntries(list []Entry[V]) {
	s.entries = append([]Entry[V](nil), list...)
}

func (s *Store[V]) UpdateKey(id ID, key string) {
	if i := s.Index(id); i >= 0 {
		s.entries[i].Key = key
	}
}

func (s *Store[V]) UpdateValue(id ID, value V) {
	if i := s.Index(id); i >= 0 {
		s.entries[i].Value = value
		s.entries[i].Unset = false
	}
}

// Append adds entry at the end.
func (s *Store[V]) Append(entry Entry[V]) {
	s.entries = append(s.entries, entry)
}

func (s *Store[V]) Remove(id ID) {
	i := s.Index(id)
	if i < 0 {
		return
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
}

// Index returns the position of id, or -1.
func (s *Store[V]) Index(id ID) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store[V]) Lookup(id ID) (Entry[V], bool) {
	if i := s.Index(id); i >= 0 {
		return s.entries[i], true
	}
	return Entry[V]{}, false
}

func (s *Store[V]) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the sequence in order.
func (s *Store[V]) Entries() []Entry[V] {
	if len(s.entries) == 0 {
		return nil
	}
	return append([]Entry[V](nil), s.entries...)
}

// canonical projects the entries onto a mapping: blank keys are dropped and
// the earliest entry wins for a repeated key. An unset row still claims its
// key so a later duplicate cannot take it over.
func (s *Store[V]) canonical() Mapping[V] {
	m := NewMapping[V]()
	claimed := make(map[string]struct{}, len(s.entries))
	for _, e := range s.entries {
		if e.Key == "" {
			continue
		}
		if _, ok := claimed[e.Key]; ok {
			continue
		}
		claimed[e.Key] = struct{}{}
		if !e.Unset {
			m.Set(e.Key, e.Value)
		}
	}
	return m
}

// holder returns the id of the first entry other than self carrying key.
func (s *Store[V]) holder(key string, self ID) (ID, bool) {
	for _, e := range s.entries {
		if e.ID != self && e.Key == key {
			return e.ID, true
		}
	}
	return "", false
}

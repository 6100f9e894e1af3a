package objectinput

import (
	"go.uber.org/zap"
)

// Outcome is the result of a key rename.
type Outcome int

const (
	// Applied means the key was stored and the mapping emitted.
	Applied Outcome = iota
	// Rejected means another row already holds the key; nothing changed.
	Rejected
	// Missing means the id is not (or no longer) in the entry list.
	Missing
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	case Missing:
		return "missing"
	}
	return "unknown"
}

// Reconciler keeps an entry list and an external mapping in sync.
//
// Row edits go through Add, UpdateKey, UpdateValue and Delete; each accepted
// edit emits the canonical mapping to the change callback. Mappings coming
// from the caller go through AcceptExternalMapping, which ignores echoes of
// the last emission and rebuilds the rows for anything else.
//
// A Reconciler is not safe for concurrent use.
type Reconciler[V any] struct {
	store    Store[V]
	onChange func(Mapping[V])
	last     Mapping[V]

	newID        func() ID
	defaultValue func() V
	equal        func(a, b V) bool
	logger       *zap.Logger
}

// New creates a reconciler whose rows mirror initial. onChange may be nil.
func New[V any](initial Mapping[V], onChange func(Mapping[V]), opts ...Option[V]) *Reconciler[V] {
	r := &Reconciler[V]{
		onChange: onChange,
		newID:    RandomIDs(),
		equal:    defaultEqual[V],
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rebuild(initial)
	return r
}

// Add appends a blank row and returns its identity. Without a configured
// default the row's value is unset.
func (r *Reconciler[V]) Add() ID {
	id := r.newID()
	entry := Entry[V]{ID: id, Unset: true}
	if r.defaultValue != nil {
		entry.Value = r.defaultValue()
		entry.Unset = false
	}
	r.store.Append(entry)
	r.emit()
	return id
}

// UpdateKey renames the row id. A non-empty key already held by another row
// is rejected without touching any state.
func (r *Reconciler[V]) UpdateKey(id ID, key string) Outcome {
	if r.store.Index(id) < 0 {
		return Missing
	}
	if key != "" {
		if other, taken := r.store.holder(key, id); taken {
			r.logger.Debug("key rename rejected",
				zap.String("id", string(id)),
				zap.String("key", key),
				zap.String("held_by", string(other)))
			return Rejected
		}
	}
	r.store.UpdateKey(id, key)
	r.emit()
	return Applied
}

func (r *Reconciler[V]) UpdateValue(id ID, value V) {
	if r.store.Index(id) < 0 {
		return
	}
	r.store.UpdateValue(id, value)
	r.emit()
}

func (r *Reconciler[V]) Delete(id ID) {
	if r.store.Index(id) < 0 {
		return
	}
	r.store.Remove(id)
	r.emit()
}

// AcceptExternalMapping takes the caller's current mapping. It returns true
// when the rows were rebuilt and false when m echoed the last emission.
func (r *Reconciler[V]) AcceptExternalMapping(m Mapping[V]) bool {
	if m.Equal(r.last, r.equal) {
		return false
	}
	r.logger.Debug("rebuilding entries from external mapping",
		zap.Int("keys", m.Len()),
		zap.Int("discarded", r.store.Len()))
	r.rebuild(m)
	return true
}

// Replace rebuilds the rows from m even when m echoes the last emission,
// so a reordered mapping takes its new order. It does not emit.
func (r *Reconciler[V]) Replace(m Mapping[V]) {
	r.logger.Debug("replacing entries",
		zap.Int("keys", m.Len()),
		zap.Int("discarded", r.store.Len()))
	r.rebuild(m)
}

// CurrentMapping derives the canonical mapping from the rows.
func (r *Reconciler[V]) CurrentMapping() Mapping[V] {
	return r.store.canonical()
}

// Entries returns a snapshot of the rows in order.
func (r *Reconciler[V]) Entries() []Entry[V] {
	return r.store.Entries()
}

// Entry looks up a single row.
func (r *Reconciler[V]) Entry(id ID) (Entry[V], bool) {
	return r.store.Lookup(id)
}

// Find returns the first row carrying key.
func (r *Reconciler[V]) Find(key string) (ID, bool) {
	return r.store.holder(key, "")
}

func (r *Reconciler[V]) rebuild(m Mapping[V]) {
	entries := make([]Entry[V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[V]{ID: r.newID(), Key: k, Value: v})
	}
	r.store.SetEntries(entries)
	r.last = m.Clone()
}

func (r *Reconciler[V]) emit() {
	current := r.store.canonical()
	r.last = current
	if r.onChange != nil {
		r.onChange(current.Clone())
	}
}

package objectinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *Store[string] {
	s := &Store[string]{}
	s.SetEntries([]Entry[string]{
		{ID: "1", Key: "a", Value: "1"},
		{ID: "2", Key: "b", Value: "2"},
	})
	return s
}

func TestStoreMutatesByIdentity(t *testing.T) {
	s := seededStore()
	s.UpdateKey("2", "bb")
	s.UpdateValue("1", "one")

	e, ok := s.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "bb", e.Key)
	e, _ = s.Lookup("1")
	assert.Equal(t, "one", e.Value)
}

func TestStoreUnknownIDIsNoop(t *testing.T) {
	s := seededStore()
	before := s.Entries()

	s.UpdateKey("9", "x")
	s.UpdateValue("9", "x")
	s.Remove("9")

	assert.Equal(t, before, s.Entries())
	_, ok := s.Lookup("9")
	assert.False(t, ok)
	assert.Equal(t, -1, s.Index("9"))
}

func TestStoreAppendAndRemoveKeepOrder(t *testing.T) {
	s := seededStore()
	s.Append(Entry[string]{ID: "3", Key: "c"})
	s.Remove("2")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ID("1"), entries[0].ID)
	assert.Equal(t, ID("3"), entries[1].ID)
}

func TestStoreEntriesIsACopy(t *testing.T) {
	s := seededStore()
	snapshot := s.Entries()
	snapshot[0].Key = "mutated"

	e, _ := s.Lookup("1")
	assert.Equal(t, "a", e.Key)
}

func TestStoreSetEntriesDoesNotAliasInput(t *testing.T) {
	list := []Entry[string]{{ID: "1", Key: "a"}}
	var s Store[string]
	s.SetEntries(list)
	list[0].Key = "changed"

	e, _ := s.Lookup("1")
	assert.Equal(t, "a", e.Key)
}

func TestStoreUpdateValueClearsUnset(t *testing.T) {
	var s Store[string]
	s.Append(Entry[string]{ID: "1", Key: "a", Unset: true})
	assert.Equal(t, 0, s.canonical().Len())

	s.UpdateValue("1", "")
	assert.Equal(t, []Pair[string]{{"a", ""}}, s.canonical().Pairs())
}

func TestSequentialIDs(t *testing.T) {
	next := Sequential()
	assert.Equal(t, ID("1"), next())
	assert.Equal(t, ID("2"), next())
}

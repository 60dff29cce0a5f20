package ladder

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmpty is returned when a table has no entries.
	ErrEmpty = errors.New("ladder: table is empty")

	// ErrNoFloor is returned when the first entry's key is not zero.
	ErrNoFloor = errors.New("ladder: first entry must have key 0")
)

// OrderError reports a key that does not strictly exceed the key before it.
type OrderError struct {
	Index int
	Prev  int
	Key   int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("ladder: key %d at index %d does not exceed previous key %d", e.Key, e.Index, e.Prev)
}

// Table is an immutable threshold table sorted strictly ascending by key.
// Lookups select the greatest entry whose key does not exceed the input.
type Table[T any] struct {
	entries []T
	keys    []int
}

// New validates entries and builds a floored Table: it must be non-empty and
// its first key must be 0, so Lookup is total for every input.
func New[T any](entries []T, key func(T) int) (*Table[T], error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	t, err := NewSparse(entries, key)
	if err != nil {
		return nil, err
	}
	if t.keys[0] != 0 {
		return nil, ErrNoFloor
	}
	return t, nil
}

// NewSparse builds a Table without the floor requirement. It may be empty;
// use Find, since inputs below the first key select nothing.
func NewSparse[T any](entries []T, key func(T) int) (*Table[T], error) {
	keys := make([]int, len(entries))
	for i, e := range entries {
		keys[i] = key(e)
	}
	if err := CheckAscending(keys); err != nil {
		return nil, err
	}

	cp := make([]T, len(entries))
	copy(cp, entries)
	return &Table[T]{entries: cp, keys: keys}, nil
}

// CheckAscending returns an *OrderError for the first key that does not
// strictly exceed its predecessor.
func CheckAscending(keys []int) error {
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return &OrderError{Index: i, Prev: keys[i-1], Key: keys[i]}
		}
	}
	return nil
}

// Lookup returns the entry with the greatest key <= v and its index.
// Negative v is treated as 0. Only valid on tables built with New.
func (t *Table[T]) Lookup(v int) (T, int) {
	e, i, _ := t.Find(v)
	return e, i
}

// Find is Lookup for sparse tables. It returns index -1 and false when v is
// below the first key.
func (t *Table[T]) Find(v int) (T, int, bool) {
	if v < 0 {
		v = 0
	}
	// First index whose key exceeds v; the answer sits just before it.
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] > v }) - 1
	if i < 0 {
		var zero T
		return zero, -1, false
	}
	return t.entries[i], i, true
}

// Next returns the entry after index i, or false if i is the last entry.
// Next(-1) is the first entry.
func (t *Table[T]) Next(i int) (T, bool) {
	if i < -1 || i+1 >= len(t.entries) {
		var zero T
		return zero, false
	}
	return t.entries[i+1], true
}

// At returns the entry at index i.
func (t *Table[T]) At(i int) T {
	return t.entries[i]
}

// Key returns the threshold key at index i.
func (t *Table[T]) Key(i int) int {
	return t.keys[i]
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Last returns the top entry. It panics on an empty sparse table.
func (t *Table[T]) Last() T {
	return t.entries[len(t.entries)-1]
}

// Entries returns a copy of the table entries in ascending order.
func (t *Table[T]) Entries() []T {
	cp := make([]T, len(t.entries))
	copy(cp, t.entries)
	return cp
}

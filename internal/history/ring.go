// Package history keeps short, bounded records of what has already been seen.
package history

// Ring is an ordered set with a fixed capacity. Adding past capacity drops
// the oldest entry. It is not safe for concurrent use.
type Ring[T comparable] struct {
	items    []T
	capacity int
}

// NewRing creates a ring holding at most capacity entries. A capacity
// below 1 is treated as 1.
func NewRing[T comparable](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Add appends v unless it is already present, evicting the oldest entry if
// the ring is full. It reports whether v was added.
func (r *Ring[T]) Add(v T) bool {
	if r.Contains(v) {
		return false
	}
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, v)
	return true
}

// Contains reports whether v is in the ring.
func (r *Ring[T]) Contains(v T) bool {
	for _, item := range r.items {
		if item == v {
			return true
		}
	}
	return false
}

// Items returns the entries, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Newest returns the most recent entry.
func (r *Ring[T]) Newest() (T, bool) {
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	return r.items[len(r.items)-1], true
}

// Len returns the number of entries.
func (r *Ring[T]) Len() int {
	return len(r.items)
}

// Cap returns the capacity.
func (r *Ring[T]) Cap() int {
	return r.capacity
}

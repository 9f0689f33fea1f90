package mdx

import (
	"iter"

	"github.com/pkg/errors"
)

// Handle identifies an object inside a Container for the container's lifetime.
// Unlike the object ID (its position), a handle survives removals of other
// objects. The zero handle is never issued.
type Handle uint32

// Container stores the objects of one kind in file order. The position of an
// object is its ID in the file formats.
type Container[T comparable] struct {
	name    string
	items   []T
	handles []Handle
	next    Handle
}

// NewContainer creates an empty container. name is used in error messages.
func NewContainer[T comparable](name string) *Container[T] {
	return &Container[T]{name: name}
}

// Name returns the container name.
func (c *Container[T]) Name() string { return c.name }

// Len returns the number of objects.
func (c *Container[T]) Len() int { return len(c.items) }

// Add appends obj and returns its ID.
func (c *Container[T]) Add(obj T) (int, error) {
	if c.ID(obj) != InvalidID {
		return InvalidID, errors.Wrapf(ErrDuplicateObject, "%s", c.name)
	}
	c.next++
	c.items = append(c.items, obj)
	c.handles = append(c.handles, c.next)
	return len(c.items) - 1, nil
}

// Get returns the object with the given ID.
func (c *Container[T]) Get(id int) (T, bool) {
	if id < 0 || id >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[id], true
}

// ID returns the position of obj, or InvalidID.
func (c *Container[T]) ID(obj T) int {
	for i, item := range c.items {
		if item == obj {
			return i
		}
	}
	return InvalidID
}

// Remove deletes the object with the given ID. Objects after it shift down by
// one; references to the removed object become unset.
func (c *Container[T]) Remove(id int) (T, error) {
	var zero T
	if id < 0 || id >= len(c.items) {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "%s id %d (count %d)", c.name, id, len(c.items))
	}
	obj := c.items[id]
	c.items = append(c.items[:id], c.items[id+1:]...)
	c.handles = append(c.handles[:id], c.handles[id+1:]...)
	return obj, nil
}

// All iterates objects in ID order.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Items returns a copy of the objects in ID order.
func (c *Container[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Container[T]) handleOf(id int) Handle {
	return c.handles[id]
}

func (c *Container[T]) lookup(h Handle) (T, int, bool) {
	for i, handle := range c.handles {
		if handle == h {
			return c.items[i], i, true
		}
	}
	var zero T
	return zero, InvalidID, false
}

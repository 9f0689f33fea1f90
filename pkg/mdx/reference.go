package mdx

import "github.com/pkg/errors"

// Reference is a non-owning link to an object stored in a Container.
// The zero value is unset. If the target is removed from its container the
// reference reads as unset.
type Reference[T comparable] struct {
	container *Container[T]
	handle    Handle
}

// Get returns the referenced object.
func (r *Reference[T]) Get() (T, bool) {
	if r.container == nil || r.handle == 0 {
		var zero T
		return zero, false
	}
	obj, _, ok := r.container.lookup(r.handle)
	return obj, ok
}

// Object returns the referenced object, or the zero value when unset.
func (r *Reference[T]) Object() T {
	obj, _ := r.Get()
	return obj
}

// IsSet reports whether the reference resolves to a live object.
func (r *Reference[T]) IsSet() bool {
	_, ok := r.Get()
	return ok
}

// ID returns the file ID of the target, or InvalidID when unset.
func (r *Reference[T]) ID() int {
	if r.container == nil || r.handle == 0 {
		return InvalidID
	}
	_, id, _ := r.container.lookup(r.handle)
	return id
}

// Set points the reference at obj, which must already be in c.
func (r *Reference[T]) Set(c *Container[T], obj T) error {
	id := c.ID(obj)
	if id == InvalidID {
		return errors.Wrapf(ErrForeignObject, "%s", c.Name())
	}
	r.bind(c, id)
	return nil
}

// Clear unsets the reference.
func (r *Reference[T]) Clear() {
	*r = Reference[T]{}
}

func (r *Reference[T]) bind(c *Container[T], id int) {
	r.container = c
	r.handle = c.handleOf(id)
}

// NodeReference links to a node in the model-wide node ID space.
type NodeReference = Reference[Node]

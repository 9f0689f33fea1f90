package mdx

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// pendingLink is one recorded "resolve id into slot" request.
type pendingLink struct {
	collection string
	id         int
	check      func() error
	apply      func()
}

// Attacher defers reference wiring until the whole object graph exists.
// Loaders register slots with raw IDs in any order, then call Attach once.
type Attacher struct {
	pending []pendingLink
	spent   bool
	log     *zap.Logger
}

// AttacherOption configures an Attacher.
type AttacherOption func(*Attacher)

// WithAttacherLogger sets the logger used to report the attach pass.
func WithAttacherLogger(log *zap.Logger) AttacherOption {
	return func(a *Attacher) {
		if log != nil {
			a.log = log
		}
	}
}

// NewAttacher creates an empty attacher.
func NewAttacher(opts ...AttacherOption) *Attacher {
	a := &Attacher{log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Pending returns the number of registered links waiting for Attach.
func (a *Attacher) Pending() int { return len(a.pending) }

// RegisterObject records that slot should point at the object with the given
// ID in c once Attach runs. InvalidID is a valid "no link" and is ignored.
func RegisterObject[T comparable](a *Attacher, c *Container[T], slot *Reference[T], id int) error {
	if a.spent {
		return ErrAttacherSpent
	}
	if id == InvalidID {
		return nil
	}
	a.pending = append(a.pending, pendingLink{
		collection: c.Name(),
		id:         id,
		check: func() error {
			if id < 0 || id >= c.Len() {
				return errors.Wrapf(ErrDanglingReference, "%s id %d (count %d)", c.Name(), id, c.Len())
			}
			return nil
		},
		apply: func() { slot.bind(c, id) },
	})
	return nil
}

// RegisterNode records a link into the model's node ID space.
func (a *Attacher) RegisterNode(m *Model, slot *NodeReference, id int) error {
	return RegisterObject(a, m.Nodes, slot, id)
}

// Attach resolves every registered link in registration order. Either all
// slots are written or, when any ID is missing, none are and the returned
// error lists every dangling reference. The attacher cannot be reused.
func (a *Attacher) Attach() error {
	if a.spent {
		return ErrAttacherSpent
	}
	a.spent = true
	pending := a.pending
	a.pending = nil

	var err error
	for _, link := range pending {
		err = multierr.Append(err, link.check())
	}
	if err != nil {
		a.log.Warn("attach failed",
			zap.Int("links", len(pending)),
			zap.Int("dangling", len(multierr.Errors(err))))
		return err
	}

	for _, link := range pending {
		link.apply()
	}
	a.log.Debug("attached references", zap.Int("links", len(pending)))
	return nil
}

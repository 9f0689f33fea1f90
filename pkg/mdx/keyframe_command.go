package mdx

type setKeyframe[T any] struct {
	track    *Track[T]
	index    int
	oldValue Keyframe[T]
	newValue Keyframe[T]
}

// NewSetKeyframe creates a command replacing the value and tangents of the
// keyframe at index. The keyframe keeps its time.
func NewSetKeyframe[T any](t *Track[T], index int, k Keyframe[T]) (Command, error) {
	if t == nil {
		return nil, ErrInvalidFieldLocator
	}
	old, err := t.Get(index)
	if err != nil {
		return nil, err
	}
	k.Time = old.Time
	return &setKeyframe[T]{track: t, index: index, oldValue: old, newValue: k}, nil
}

func (c *setKeyframe[T]) Do()   { c.track.keyframes[c.index] = c.newValue }
func (c *setKeyframe[T]) Undo() { c.track.keyframes[c.index] = c.oldValue }

type removeKeyframe[T any] struct {
	track   *Track[T]
	index   int
	removed Keyframe[T]
}

// NewRemoveKeyframe creates a command deleting the keyframe at index. Undo
// puts it back at the same index.
func NewRemoveKeyframe[T any](t *Track[T], index int) (Command, error) {
	if t == nil {
		return nil, ErrInvalidFieldLocator
	}
	old, err := t.Get(index)
	if err != nil {
		return nil, err
	}
	return &removeKeyframe[T]{track: t, index: index, removed: old}, nil
}

func (c *removeKeyframe[T]) Do() {
	keys := c.track.keyframes
	c.track.keyframes = append(keys[:c.index], keys[c.index+1:]...)
}

func (c *removeKeyframe[T]) Undo() { c.track.insertAt(c.index, c.removed) }

type insertKeyframe[T any] struct {
	track    *Track[T]
	keyframe Keyframe[T]
	index    int
}

// NewInsertKeyframe creates a command adding k at its sorted position.
func NewInsertKeyframe[T any](t *Track[T], k Keyframe[T]) (Command, error) {
	if t == nil {
		return nil, ErrInvalidFieldLocator
	}
	return &insertKeyframe[T]{track: t, keyframe: k, index: InvalidID}, nil
}

func (c *insertKeyframe[T]) Do() { c.index = c.track.Add(c.keyframe) }

func (c *insertKeyframe[T]) Undo() {
	if c.index == InvalidID {
		return
	}
	keys := c.track.keyframes
	c.track.keyframes = append(keys[:c.index], keys[c.index+1:]...)
	c.index = InvalidID
}

type clearKeyframes[T any] struct {
	track   *Track[T]
	removed []Keyframe[T]
}

// NewClearKeyframes creates a command removing every keyframe of t.
func NewClearKeyframes[T any](t *Track[T]) (Command, error) {
	if t == nil {
		return nil, ErrInvalidFieldLocator
	}
	return &clearKeyframes[T]{track: t}, nil
}

func (c *clearKeyframes[T]) Do() {
	c.removed = c.track.keyframes
	c.track.keyframes = nil
}

func (c *clearKeyframes[T]) Undo() {
	c.track.keyframes = make([]Keyframe[T], len(c.removed))
	copy(c.track.keyframes, c.removed)
}

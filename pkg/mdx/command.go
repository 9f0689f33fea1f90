package mdx

// Command is one reversible edit of the object graph. Constructors validate
// their target and capture the old value; Do performs the write and Undo
// restores the captured value. Commands do not own what they edit and must
// be discarded before their targets are destroyed.
type Command interface {
	Do()
	Undo()
}

// Group applies several commands as one edit.
type Group struct {
	commands []Command
}

// NewGroup creates a group of commands. Nil commands are skipped.
func NewGroup(commands ...Command) *Group {
	g := &Group{}
	for _, c := range commands {
		g.Add(c)
	}
	return g
}

// Add appends a command to the group.
func (g *Group) Add(c Command) {
	if c != nil {
		g.commands = append(g.commands, c)
	}
}

// Len returns the number of commands in the group.
func (g *Group) Len() int { return len(g.commands) }

// Do applies the commands in order.
func (g *Group) Do() {
	for _, c := range g.commands {
		c.Do()
	}
}

// Undo reverts the commands in reverse order.
func (g *Group) Undo() {
	for i := len(g.commands) - 1; i >= 0; i-- {
		g.commands[i].Undo()
	}
}

package mui

import "iter"

// DefaultCommandCapacity is the number of commands a frame may emit unless
// WithCommandCapacity says otherwise.
const DefaultCommandCapacity = 4096

// CommandKind tags a Command.
type CommandKind uint8

const (
	CommandJump CommandKind = iota // Redirects traversal; never yielded to renderers
	CommandClip                    // Sets the clip rectangle
	CommandRect                    // Filled rectangle
	CommandText                    // Glyph run from the frame's text arena
	CommandIcon                    // Built-in icon
)

func (k CommandKind) String() string {
	switch k {
	case CommandJump:
		return "jump"
	case CommandClip:
		return "clip"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	}
	return "unknown"
}

// Command is one entry of the frame's command buffer.
// Which fields are meaningful depends on Kind:
//
//	CommandClip  Rect
//	CommandRect  Rect, Color
//	CommandText  Pos, Color, Font, TextStart/TextEnd (use CommandList.Text)
//	CommandIcon  Rect, Color, Icon
type Command struct {
	Kind  CommandKind
	Rect  Rect
	Pos   Vec2
	Color Color
	Font  Font
	Icon  Icon

	TextStart, TextEnd int // Byte range into the text arena

	dst int // Jump target
}

// CommandList is the command buffer of one frame plus the text arena its
// text commands point into. Both are cleared together at frame start.
type CommandList struct {
	cmds []Command
	text []byte
}

func newCommandList(capacity int) CommandList {
	return CommandList{
		cmds: make([]Command, 0, capacity),
		text: make([]byte, 0, capacity*8),
	}
}

func (l *CommandList) reset() {
	l.cmds = l.cmds[:0]
	l.text = l.text[:0]
}

func (l *CommandList) push(c Command) int {
	if len(l.cmds) == cap(l.cmds) {
		violation("push command", ErrCapacityExceeded, "command buffer holds %d commands", cap(l.cmds))
	}
	l.cmds = append(l.cmds, c)
	return len(l.cmds) - 1
}

// pushText copies s into the arena and returns its range.
func (l *CommandList) pushText(s string) (start, end int) {
	start = len(l.text)
	l.text = append(l.text, s...)
	return start, len(l.text)
}

// Len returns the number of commands in buffer order, jumps included.
func (l *CommandList) Len() int {
	return len(l.cmds)
}

// At returns the command at buffer index i.
func (l *CommandList) At(i int) Command {
	return l.cmds[i]
}

// Text returns the string a text command refers to.
func (l *CommandList) Text(c Command) string {
	return string(l.text[c.TextStart:c.TextEnd])
}

// TextBytes is Text without the copy. The slice is only valid until the
// next frame begins.
func (l *CommandList) TextBytes(c Command) []byte {
	return l.text[c.TextStart:c.TextEnd]
}

// Next returns the buffer index of the first drawable command at or after
// i in traversal order, following jumps. It returns Len() when the chain
// is exhausted.
func (l *CommandList) Next(i int) int {
	for i < len(l.cmds) && l.cmds[i].Kind == CommandJump {
		i = l.cmds[i].dst
	}
	return i
}

// All yields the drawable commands of a finished frame in root z-order.
func (l *CommandList) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for i := l.Next(0); i < len(l.cmds); i = l.Next(i + 1) {
			if !yield(l.cmds[i]) {
				return
			}
		}
	}
}

// pushJump appends a jump to dst and returns its index.
func (l *CommandList) pushJump(dst int) int {
	return l.push(Command{Kind: CommandJump, dst: dst})
}

func (l *CommandList) setJump(idx, dst int) {
	l.cmds[idx].dst = dst
}

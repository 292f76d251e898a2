package mui

// Capacities of the per-frame stacks.
const (
	rootListSize       = 32
	containerStackSize = 32
	clipStackSize      = 32
	idStackSize        = 32
	layoutStackSize    = 16
)

// stack is a fixed-capacity LIFO. It never grows past its limit: a push on
// a full stack or a pop on an empty one is a precondition violation.
type stack[T any] struct {
	name  string
	items []T
}

func newStack[T any](name string, limit int) stack[T] {
	return stack[T]{name: name, items: make([]T, 0, limit)}
}

func (s *stack[T]) push(v T) {
	if len(s.items) == cap(s.items) {
		violation("push "+s.name, ErrStackOverflow, "limit %d", cap(s.items))
	}
	s.items = append(s.items, v)
}

func (s *stack[T]) pop() T {
	n := len(s.items)
	if n == 0 {
		violation("pop "+s.name, ErrUnbalancedStack, "stack is empty")
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v
}

// top returns a pointer to the innermost element.
func (s *stack[T]) top() *T {
	if len(s.items) == 0 {
		violation("top "+s.name, ErrUnbalancedStack, "stack is empty")
	}
	return &s.items[len(s.items)-1]
}

func (s *stack[T]) peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack[T]) len() int { return len(s.items) }

func (s *stack[T]) at(i int) T { return s.items[i] }

func (s *stack[T]) clear() {
	clear(s.items)
	s.items = s.items[:0]
}

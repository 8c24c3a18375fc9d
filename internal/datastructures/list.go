// Package datastructures implements an indexable doubly linked list whose
// nodes live in a per-list arena.
//
// A nil *List is accepted everywhere: operations that grow or rewrite a
// list allocate and return a new one, read-only queries see it as empty.
// Payloads are borrowed *T references and are never freed by the list.
package datastructures

type (
	// List represents a doubly linked list.
	List[T any] struct {
		head   handle
		tail   handle
		length int
		arena  *arena[T]
		cfg    *settings
	}

	// Match reports whether a payload is selected.
	Match[T any] func(payload *T) bool

	// Compare orders two payloads: negative, zero or positive.
	Compare[T any] func(a, b *T) int
)

// New creates a new empty list.
func New[T any](opts ...Option) *List[T] {
	cfg := newSettings(opts)
	cfg.allocate(KindList)
	return &List[T]{cfg: cfg}
}

// Of creates a list holding a single node referencing payload.
func Of[T any](payload *T, opts ...Option) *List[T] {
	return New[T](opts...).Append(payload)
}

// FromSlice creates a list referencing payloads in order.
func FromSlice[T any](payloads []*T, opts ...Option) *List[T] {
	l := New[T](opts...)
	for _, p := range payloads {
		l.Append(p)
	}
	return l
}

func (l *List[T]) settings() *settings {
	if l.cfg == nil {
		l.cfg = defaultSettings()
	}
	return l.cfg
}

func (l *List[T]) store() *arena[T] {
	if l.arena == nil {
		l.arena = newArena[T]()
	}
	return l.arena
}

func (l *List[T]) at(h handle) *slot[T] {
	return l.arena.get(h)
}

func (l *List[T]) node(h handle) Node[T] {
	if h == nilHandle {
		return Node[T]{}
	}
	return l.arena.node(h)
}

// owns reports whether n is a live node of l.
func (l *List[T]) owns(n Node[T]) bool {
	return l != nil && l.arena != nil && n.a == l.arena && n.Valid()
}

// makeNode allocates a slot linked to prev and next. It does not touch the
// neighbours.
func (l *List[T]) makeNode(payload *T, prev, next handle) handle {
	l.settings().allocate(KindNode)
	return l.store().alloc(payload, prev, next)
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Head returns the first node, or the zero Node when the list is empty.
func (l *List[T]) Head() Node[T] {
	if l == nil {
		return Node[T]{}
	}
	return l.node(l.head)
}

// Tail returns the last node, or the zero Node when the list is empty.
func (l *List[T]) Tail() Node[T] {
	if l == nil {
		return Node[T]{}
	}
	return l.node(l.tail)
}

// Destroy releases every node of the list and leaves it empty. Nodes
// obtained before the call become invalid. Payloads are left alone.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}
	if l.arena != nil {
		h, backward := l.head, false
		if h == nilHandle {
			h, backward = l.tail, true
		}
		for h != nilHandle {
			s := l.at(h)
			next := s.next
			if backward {
				next = s.prev
			}
			l.arena.release(h)
			h = next
		}
	}
	l.arena = nil
	l.head = nilHandle
	l.tail = nilHandle
	l.length = 0
}

// Duplicate returns a shallow copy: new nodes referencing the same
// payloads, in the same order. Duplicating a nil list yields nil.
func (l *List[T]) Duplicate() *List[T] {
	if l == nil {
		return nil
	}
	dup := &List[T]{cfg: l.settings()}
	dup.cfg.allocate(KindList)
	for n := l.Step(Forward, Node[T]{}); n.Valid(); n = l.Step(Forward, n) {
		dup.Append(n.Payload())
	}
	return dup
}

// Payloads returns the payload references from head to tail.
func (l *List[T]) Payloads() []*T {
	out := make([]*T, 0, l.Len())
	for n := l.Head(); n.Valid(); n = n.Next() {
		out = append(out, n.Payload())
	}
	return out
}

// Count returns the number of nodes whose payload matches. A nil match
// counts every node.
func (l *List[T]) Count(match Match[T]) int {
	count := 0
	for n := l.Head(); n.Valid(); n = n.Next() {
		if match == nil || match(n.Payload()) {
			count++
		}
	}
	return count
}

// Find returns the first node, from the head, whose payload matches.
func (l *List[T]) Find(match Match[T]) Node[T] {
	if match == nil {
		return Node[T]{}
	}
	for n := l.Head(); n.Valid(); n = n.Next() {
		if match(n.Payload()) {
			return n
		}
	}
	return Node[T]{}
}

// Contains reports whether any payload matches.
func (l *List[T]) Contains(match Match[T]) bool {
	return l.Find(match).Valid()
}

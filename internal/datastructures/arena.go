package datastructures

// handle addresses a slot in an arena. The zero handle is the absent link,
// which keeps the zero List usable.
type handle int32

const nilHandle handle = 0

type slot[T any] struct {
	payload *T
	prev    handle
	next    handle
	gen     uint32
	live    bool
}

// arena is the node store owned by a single List. Released slots are
// recycled through a free deque; their generation is bumped so stale Node
// values stop resolving.
type arena[T any] struct {
	slots []slot[T]
	free  *Deque[handle]
}

func newArena[T any]() *arena[T] {
	return &arena[T]{
		// slot 0 backs nilHandle and is never handed out
		slots: make([]slot[T], 1, 8),
		free:  NewDeque[handle](8),
	}
}

func (a *arena[T]) alloc(payload *T, prev, next handle) handle {
	h, err := a.free.PopBack()
	if err != nil {
		h = handle(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[h]
	s.payload = payload
	s.prev = prev
	s.next = next
	s.live = true
	return h
}

func (a *arena[T]) release(h handle) {
	s := &a.slots[h]
	*s = slot[T]{gen: s.gen + 1}
	a.free.PushBack(h)
}

func (a *arena[T]) get(h handle) *slot[T] {
	return &a.slots[h]
}

func (a *arena[T]) node(h handle) Node[T] {
	if h == nilHandle {
		return Node[T]{}
	}
	return Node[T]{a: a, id: h, gen: a.slots[h].gen}
}

// Node is a handle on a list element. The zero Node is the absent node.
// Nodes compare with == by identity: two Nodes are equal only when they
// designate the same element of the same list.
type Node[T any] struct {
	a   *arena[T]
	id  handle
	gen uint32
}

func (n Node[T]) slot() *slot[T] {
	if n.a == nil || n.id == nilHandle || int(n.id) >= len(n.a.slots) {
		return nil
	}
	s := &n.a.slots[n.id]
	if !s.live || s.gen != n.gen {
		return nil
	}
	return s
}

// Valid reports whether n designates a live element.
func (n Node[T]) Valid() bool {
	return n.slot() != nil
}

// Payload returns the referenced payload, nil for padding nodes and for
// invalid nodes.
func (n Node[T]) Payload() *T {
	if s := n.slot(); s != nil {
		return s.payload
	}
	return nil
}

// Next returns the node closer to the tail.
func (n Node[T]) Next() Node[T] {
	if s := n.slot(); s != nil {
		return n.a.node(s.next)
	}
	return Node[T]{}
}

// Prev returns the node closer to the head.
func (n Node[T]) Prev() Node[T] {
	if s := n.slot(); s != nil {
		return n.a.node(s.prev)
	}
	return Node[T]{}
}

package datastructures

// Direction is a traversal orientation.
type Direction int

const (
	// Forward walks from head to tail.
	Forward Direction = iota
	// Backward walks from tail to head.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// Step returns the node following cur in direction dir. When cur is the
// zero Node the walk starts at the head (Forward) or the tail (Backward).
// The zero Node is returned past the last element.
func (l *List[T]) Step(dir Direction, cur Node[T]) Node[T] {
	if cur == (Node[T]{}) {
		if dir == Backward {
			return l.Tail()
		}
		return l.Head()
	}
	if dir == Backward {
		return cur.Prev()
	}
	return cur.Next()
}

// NodeAt resolves a signed index. Non-negative indexes count from the head
// (head is 0), negative ones from the tail (tail is -1). The zero Node is
// returned when index falls outside [-Len, Len).
func (l *List[T]) NodeAt(index int) Node[T] {
	n := l.Len()
	if index >= n || index < -n {
		return Node[T]{}
	}
	dir, steps := Forward, index
	if index < 0 {
		dir, steps = Backward, -index-1
	}
	cur := l.Step(dir, Node[T]{})
	for ; steps > 0; steps-- {
		cur = l.Step(dir, cur)
	}
	return cur
}

// Get returns the payload at index and whether a node exists there. A
// padding node yields (nil, true).
func (l *List[T]) Get(index int) (*T, bool) {
	n := l.NodeAt(index)
	if !n.Valid() {
		return nil, false
	}
	return n.Payload(), true
}

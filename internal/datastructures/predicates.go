package datastructures

// same reports whether two nodes match: by identity when cmp is nil, by
// cmp(...) == 0 otherwise.
func same[T any](cmp Compare[T], a, b Node[T]) bool {
	if cmp == nil {
		return a == b
	}
	return cmp(a.Payload(), b.Payload()) == 0
}

// Equal reports whether a and b hold matching nodes in the same order.
// With a nil cmp nodes only match themselves, so distinct lists are never
// equal unless both are empty.
func Equal[T any](cmp Compare[T], a, b *List[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	var na, nb Node[T]
	for {
		na = a.Step(Forward, na)
		nb = b.Step(Forward, nb)
		switch {
		case !na.Valid() && !nb.Valid():
			return true
		case !na.Valid() || !nb.Valid():
			return false
		case !same(cmp, na, nb):
			return false
		}
	}
}

// Palindrome reports whether the list reads the same from both ends. A nil
// list is not a palindrome; an empty one is.
func (l *List[T]) Palindrome(cmp Compare[T]) bool {
	if l == nil {
		return false
	}
	front := l.Step(Forward, Node[T]{})
	back := l.Step(Backward, Node[T]{})
	for {
		// met on the middle node, or crossed between the two middle ones
		if front == back || front.Prev() == back {
			return true
		}
		if !same(cmp, front, back) {
			return false
		}
		front = l.Step(Forward, front)
		back = l.Step(Backward, back)
	}
}

// DetectCycle runs Floyd's tortoise and hare over the next links from the
// head. It returns the node where the chain loops back, or the zero Node
// for an acyclic list. Only the links are inspected, never Len.
func (l *List[T]) DetectCycle() Node[T] {
	if l == nil || l.arena == nil {
		return Node[T]{}
	}
	next := func(h handle) handle { return l.at(h).next }

	turtle, hare := l.head, l.head
	for {
		if hare == nilHandle || next(hare) == nilHandle {
			return Node[T]{}
		}
		hare = next(next(hare))
		turtle = next(turtle)
		if turtle == hare {
			break
		}
	}

	turtle = l.head
	for turtle != hare {
		turtle = next(turtle)
		hare = next(hare)
	}
	return l.node(turtle)
}

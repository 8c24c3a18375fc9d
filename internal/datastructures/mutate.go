package datastructures

// Push adds a node referencing payload at the head of the list.
func (l *List[T]) Push(payload *T) *List[T] {
	if l == nil {
		l = New[T]()
	}
	h := l.makeNode(payload, nilHandle, l.head)
	if l.length == 0 {
		l.tail = h
	} else {
		l.at(l.head).prev = h
	}
	l.head = h
	l.length++
	return l
}

// Append adds a node referencing payload at the tail of the list.
func (l *List[T]) Append(payload *T) *List[T] {
	if l == nil {
		l = New[T]()
	}
	h := l.makeNode(payload, l.tail, nilHandle)
	if l.length == 0 {
		l.head = h
	} else {
		l.at(l.tail).next = h
	}
	l.tail = h
	l.length++
	return l
}

// Insert places payload so that it ends up at index. 0 and -(Len+1) mean
// a new head, Len and -1 a new tail. An index beyond either end first pads
// the list with nil-payload nodes: inserting at 5 into a 2-node list adds
// 3 padding nodes, then the payload.
func (l *List[T]) Insert(payload *T, index int) *List[T] {
	if l == nil {
		l = New[T]()
	}
	n := l.length
	switch {
	case index == 0 || index == -(n+1):
		return l.Push(payload)
	case index == -1 || index == n:
		return l.Append(payload)
	case index > n:
		for ; n < index; n++ {
			l.Append(nil)
		}
		return l.Append(payload)
	case index < -(n + 1):
		for ; -(n + 1) > index; n++ {
			l.Push(nil)
		}
		return l.Push(payload)
	}

	target := l.NodeAt(index).id
	if index >= 0 {
		l.spliceBefore(target, payload)
	} else {
		l.spliceAfter(target, payload)
	}
	return l
}

func (l *List[T]) spliceBefore(target handle, payload *T) {
	prev := l.at(target).prev
	h := l.makeNode(payload, prev, target)
	l.at(target).prev = h
	if prev == nilHandle {
		l.head = h
	} else {
		l.at(prev).next = h
	}
	l.length++
}

func (l *List[T]) spliceAfter(target handle, payload *T) {
	next := l.at(target).next
	h := l.makeNode(payload, target, next)
	l.at(target).next = h
	if next == nilHandle {
		l.tail = h
	} else {
		l.at(next).prev = h
	}
	l.length++
}

// unlink detaches h, releases its slot and returns the payload.
func (l *List[T]) unlink(h handle) *T {
	s := l.at(h)
	prev, next, payload := s.prev, s.next, s.payload
	if prev == nilHandle {
		l.head = next
	} else {
		l.at(prev).next = next
	}
	if next == nilHandle {
		l.tail = prev
	} else {
		l.at(next).prev = prev
	}
	l.arena.release(h)
	l.length--
	return payload
}

// PopAt removes the node at index and hands its payload back. The boolean
// is false when no node exists at index.
func (l *List[T]) PopAt(index int) (*T, bool) {
	n := l.NodeAt(index)
	if !n.Valid() {
		return nil, false
	}
	return l.unlink(n.id), true
}

// PopFirst removes the head node.
func (l *List[T]) PopFirst() (*T, bool) {
	return l.PopAt(0)
}

// PopLast removes the tail node.
func (l *List[T]) PopLast() (*T, bool) {
	return l.PopAt(-1)
}

// Remove detaches n from the list. It reports false when n is not a live
// node of l.
func (l *List[T]) Remove(n Node[T]) (*T, bool) {
	if !l.owns(n) {
		return nil, false
	}
	return l.unlink(n.id), true
}

// Reverse flips the list in place. No node is allocated.
func (l *List[T]) Reverse() *List[T] {
	if l == nil {
		return New[T]()
	}
	for h := l.head; h != nilHandle; {
		s := l.at(h)
		next := s.next
		s.prev, s.next = s.next, s.prev
		h = next
	}
	l.head, l.tail = l.tail, l.head
	return l
}

// Filter drops every node whose payload does not match. Dropped payloads
// are not freed. A nil match keeps everything.
func (l *List[T]) Filter(match Match[T]) *List[T] {
	if l == nil {
		return New[T]()
	}
	if match == nil {
		return l
	}
	for h := l.head; h != nilHandle; {
		s := l.at(h)
		next := s.next
		if !match(s.payload) {
			l.unlink(h)
		}
		h = next
	}
	return l
}

package datastructures

import (
	"fmt"
	"io"
	"strings"
)

// DefaultSeparator joins formatted nodes when Print is given none.
const DefaultSeparator = ", "

// Formatter renders the node at a head-relative index.
type Formatter[T any] func(index int, payload *T) string

// DefaultFormatter renders a node's position and payload address.
func DefaultFormatter[T any](index int, payload *T) string {
	if payload == nil {
		return fmt.Sprintf("#%d@<nil>", index)
	}
	return fmt.Sprintf("#%d@%p", index, payload)
}

// Print writes "(item, item, ...)\n" to w, one item per node from head to
// tail. Nothing is written when w or l is nil.
func (l *List[T]) Print(w io.Writer, format Formatter[T], sep string) error {
	if w == nil || l == nil {
		return nil
	}
	if format == nil {
		format = DefaultFormatter[T]
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	var b strings.Builder
	index := 0
	for n := l.Step(Forward, Node[T]{}); n.Valid(); n = l.Step(Forward, n) {
		if index > 0 {
			b.WriteString(sep)
		}
		b.WriteString(format(index, n.Payload()))
		index++
	}
	_, err := fmt.Fprintf(w, "(%s)\n", b.String())
	return err
}

// String renders the list with the default formatter.
func (l *List[T]) String() string {
	var b strings.Builder
	_ = l.Print(&b, nil, "")
	return strings.TrimSuffix(b.String(), "\n")
}

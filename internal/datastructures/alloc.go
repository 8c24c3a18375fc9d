package datastructures

import (
	"errors"
	"fmt"

	"github.com/amartos/sccroll/internal/utils"
)

// ErrAllocation is the root of every allocation failure reported by an Allocator.
var ErrAllocation = errors.New("allocation failed")

// Kind tells an Allocator what is being allocated.
type Kind int

const (
	KindList Kind = iota
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindNode:
		return "node"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "list", "node" or "any" to a kind filter. "any" and the
// empty string yield a nil filter.
func ParseKind(s string) ([]Kind, error) {
	switch s {
	case "", "any":
		return nil, nil
	case "list":
		return []Kind{KindList}, nil
	case "node":
		return []Kind{KindNode}, nil
	default:
		return nil, fmt.Errorf("unknown allocation kind %q", s)
	}
}

// Allocator grants storage for lists and nodes. Any error it returns is
// treated as fatal by the list engine.
type Allocator interface {
	Allocate(kind Kind) error
}

// heapAllocator never fails.
type heapAllocator struct{}

func (heapAllocator) Allocate(Kind) error { return nil }

// FaultInjector fails exactly one allocation: the FailAt-th one (1-based)
// among those whose kind matches. FailAt <= 0 disables injection.
type FaultInjector struct {
	FailAt int
	kinds  []Kind
	seen   int
}

// NewFaultInjector returns an injector counting allocations of the given
// kinds, or of every kind when none are given.
func NewFaultInjector(failAt int, kinds ...Kind) *FaultInjector {
	return &FaultInjector{FailAt: failAt, kinds: kinds}
}

func (f *FaultInjector) matches(kind Kind) bool {
	if len(f.kinds) == 0 {
		return true
	}
	for _, k := range f.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Allocate implements Allocator.
func (f *FaultInjector) Allocate(kind Kind) error {
	if f.FailAt <= 0 || !f.matches(kind) {
		return nil
	}
	f.seen++
	if f.seen == f.FailAt {
		return fmt.Errorf("%w: %s allocation #%d", ErrAllocation, kind, f.seen)
	}
	return nil
}

// Seen returns how many matching allocations went through the injector.
func (f *FaultInjector) Seen() int {
	return f.seen
}

// Reset rearms the injector.
func (f *FaultInjector) Reset() {
	f.seen = 0
}

func defaultFatal(err error) {
	utils.GetLogger().Fatal("list engine: " + err.Error())
}

type settings struct {
	alloc Allocator
	fatal func(error)
}

func defaultSettings() *settings {
	return &settings{alloc: heapAllocator{}, fatal: defaultFatal}
}

// Option configures a list at construction time.
type Option func(*settings)

// WithAllocator routes node and list allocations through a.
func WithAllocator(a Allocator) Option {
	return func(s *settings) {
		if a != nil {
			s.alloc = a
		}
	}
}

// WithFatal replaces the allocation failure handler. The handler is not
// expected to return; if it does the engine panics with the error.
func WithFatal(fn func(error)) Option {
	return func(s *settings) {
		if fn != nil {
			s.fatal = fn
		}
	}
}

func newSettings(opts []Option) *settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// allocate consults the allocator and never returns on failure.
func (s *settings) allocate(kind Kind) {
	err := s.alloc.Allocate(kind)
	if err == nil {
		return
	}
	s.fatal(err)
	panic(err)
}

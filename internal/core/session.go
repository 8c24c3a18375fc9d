package core

import (
	"errors"
	"sort"
	"strings"

	"github.com/amartos/sccroll/internal/datastructures"
	"github.com/amartos/sccroll/internal/utils"
)

var (
	ErrEmptyKey    = errors.New("key cannot be empty")
	ErrKeyNotFound = errors.New("key not found")
)

// EmptyToken stands for a nil payload in requests and responses.
const EmptyToken = "_"

// Session holds named string lists. Lists are created on first write.
type Session struct {
	lists     map[string]*datastructures.List[string]
	opts      []datastructures.Option
	separator string
}

// NewSession creates a session whose lists are built with opts.
func NewSession(opts ...datastructures.Option) *Session {
	return &Session{
		lists:     make(map[string]*datastructures.List[string]),
		opts:      opts,
		separator: datastructures.DefaultSeparator,
	}
}

// NewSessionFromConfig wires the configured separator and fault injection.
func NewSessionFromConfig(config *utils.Config) (*Session, error) {
	var opts []datastructures.Option
	if config.Fault.FailAt > 0 {
		kinds, err := datastructures.ParseKind(config.Fault.Kind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, datastructures.WithAllocator(
			datastructures.NewFaultInjector(config.Fault.FailAt, kinds...)))
	}
	s := NewSession(opts...)
	if config.Separator != "" {
		s.separator = config.Separator
	}
	return s, nil
}

// lookup returns the named list, nil when unknown.
func (s *Session) lookup(key string) (*datastructures.List[string], error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return s.lists[key], nil
}

// mustExist is lookup for commands that need an existing list.
func (s *Session) mustExist(key string) (*datastructures.List[string], error) {
	l, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrKeyNotFound
	}
	return l, nil
}

// write returns the named list, creating it with the session options.
func (s *Session) write(key string) (*datastructures.List[string], error) {
	l, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	if l == nil {
		l = datastructures.New[string](s.opts...)
		s.lists[key] = l
	}
	return l, nil
}

func payload(value string) *string {
	if value == EmptyToken {
		return nil
	}
	return &value
}

func text(p *string) string {
	if p == nil {
		return EmptyToken
	}
	return *p
}

func contains(sub string) datastructures.Match[string] {
	return func(p *string) bool {
		return p != nil && strings.Contains(*p, sub)
	}
}

// compareText orders payloads by text, nil before everything else.
func compareText(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(*a, *b)
}

func formatText(_ int, p *string) string {
	return text(p)
}

// Push adds values at the head, one after the other.
func (s *Session) Push(key string, values ...string) (int, error) {
	l, err := s.write(key)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		l.Push(payload(v))
	}
	return l.Len(), nil
}

// Append adds values at the tail.
func (s *Session) Append(key string, values ...string) (int, error) {
	l, err := s.write(key)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		l.Append(payload(v))
	}
	return l.Len(), nil
}

// Insert places value at index, padding the list when needed.
func (s *Session) Insert(key string, index int, value string) (int, error) {
	l, err := s.write(key)
	if err != nil {
		return 0, err
	}
	l.Insert(payload(value), index)
	return l.Len(), nil
}

// Pop removes the node at index. found is false when there is none.
func (s *Session) Pop(key string, index int) (value string, found bool, err error) {
	l, err := s.mustExist(key)
	if err != nil {
		return "", false, err
	}
	p, ok := l.PopAt(index)
	if !ok {
		return "", false, nil
	}
	return text(p), true, nil
}

// Get returns the payload at index.
func (s *Session) Get(key string, index int) (value string, found bool, err error) {
	l, err := s.mustExist(key)
	if err != nil {
		return "", false, err
	}
	p, ok := l.Get(index)
	if !ok {
		return "", false, nil
	}
	return text(p), true, nil
}

// Len returns the length of a list; unknown lists are empty.
func (s *Session) Len(key string) (int, error) {
	l, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	return l.Len(), nil
}

// Count counts payloads containing sub, or every node when all is set.
func (s *Session) Count(key, sub string, all bool) (int, error) {
	l, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	if all {
		return l.Count(nil), nil
	}
	return l.Count(contains(sub)), nil
}

// Filter keeps the payloads containing sub.
func (s *Session) Filter(key, sub string) (int, error) {
	l, err := s.mustExist(key)
	if err != nil {
		return 0, err
	}
	l.Filter(contains(sub))
	return l.Len(), nil
}

// Reverse flips a list in place.
func (s *Session) Reverse(key string) error {
	l, err := s.mustExist(key)
	if err != nil {
		return err
	}
	l.Reverse()
	return nil
}

// Dup stores a shallow copy of key under other, replacing what was there.
func (s *Session) Dup(key, other string) error {
	l, err := s.mustExist(key)
	if err != nil {
		return err
	}
	if other == "" {
		return ErrEmptyKey
	}
	if old := s.lists[other]; old != nil && old != l {
		old.Destroy()
	}
	s.lists[other] = l.Duplicate()
	return nil
}

// Equal compares two lists by payload text, or by node identity when
// strict is set. Unknown lists compare as nil lists.
func (s *Session) Equal(key, other string, strict bool) (bool, error) {
	a, err := s.lookup(key)
	if err != nil {
		return false, err
	}
	b, err := s.lookup(other)
	if err != nil {
		return false, err
	}
	if strict {
		return datastructures.Equal[string](nil, a, b), nil
	}
	return datastructures.Equal(compareText, a, b), nil
}

// Palindrome tests a list by payload text.
func (s *Session) Palindrome(key string) (bool, error) {
	l, err := s.lookup(key)
	if err != nil {
		return false, err
	}
	return l.Palindrome(compareText), nil
}

// Cycle returns the payload of the cycle entry node, if any.
func (s *Session) Cycle(key string) (value string, found bool, err error) {
	l, err := s.mustExist(key)
	if err != nil {
		return "", false, err
	}
	n := l.DetectCycle()
	if !n.Valid() {
		return "", false, nil
	}
	return text(n.Payload()), true, nil
}

// Print renders a list as "(a, b, c)". An empty separator means the
// session default.
func (s *Session) Print(key, separator string) (string, error) {
	l, err := s.mustExist(key)
	if err != nil {
		return "", err
	}
	if separator == "" {
		separator = s.separator
	}
	var b strings.Builder
	if err := l.Print(&b, formatText, separator); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// Destroy frees a list and forgets its name.
func (s *Session) Destroy(key string) error {
	l, err := s.mustExist(key)
	if err != nil {
		return err
	}
	l.Destroy()
	delete(s.lists, key)
	return nil
}

// Keys returns the list names in order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.lists))
	for k := range s.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package collection

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/victorashino/DataStructuresImplementation/llog"
)

// BoundedStack 定长数组实现的栈, 容量在创建时固定, 不会扩容.
// 不是并发安全的, 多协程使用时需要调用方自行加锁.
type BoundedStack[T any] struct {
	elems    []T
	top      int
	capacity int

	id  string
	log llog.Logger
}

type BoundedStackOption[T any] func(s *BoundedStack[T])

// WithStackLogger 被拒绝的 Push/Pop/Peek 会以 debug 级别输出到该 logger
func WithStackLogger[T any](logger llog.Logger) BoundedStackOption[T] {
	return func(s *BoundedStack[T]) {
		s.log = logger
	}
}

func WithStackID[T any](id string) BoundedStackOption[T] {
	return func(s *BoundedStack[T]) {
		s.id = id
	}
}

// NewBoundedStack creates an empty stack holding at most capacity elements.
// A zero capacity gives a stack that is always full; a negative one panics.
func NewBoundedStack[T any](capacity int, opts ...BoundedStackOption[T]) *BoundedStack[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("collection: negative stack capacity %d", capacity))
	}

	s := &BoundedStack[T]{
		elems:    make([]T, capacity),
		top:      -1,
		capacity: capacity,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = llog.Nop()
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}

	return s
}

func (s *BoundedStack[T]) Push(e T) error {
	if s.top == s.capacity-1 {
		s.log.Debugf("stack %s: push rejected, capacity %d reached", s.id, s.capacity)
		return ErrStackFull
	}

	s.top++
	s.elems[s.top] = e

	return nil
}

func (s *BoundedStack[T]) Pop() (T, error) {
	if s.Empty() {
		s.log.Debugf("stack %s: pop on empty stack", s.id)
		return *new(T), ErrStackEmpty
	}

	e := s.elems[s.top]
	// 置为0值, 避免持有已出栈元素的引用
	s.elems[s.top] = *new(T)
	s.top--

	return e, nil
}

func (s *BoundedStack[T]) Peek() (T, error) {
	if s.Empty() {
		s.log.Debugf("stack %s: peek on empty stack", s.id)
		return *new(T), ErrStackEmpty
	}

	return s.elems[s.top], nil
}

func (s *BoundedStack[T]) Size() int {
	return s.top + 1
}

func (s *BoundedStack[T]) Empty() bool {
	return s.top == -1
}

func (s *BoundedStack[T]) Full() bool {
	return s.top == s.capacity-1
}

func (s *BoundedStack[T]) Cap() int {
	return s.capacity
}

func (s *BoundedStack[T]) ID() string {
	return s.id
}

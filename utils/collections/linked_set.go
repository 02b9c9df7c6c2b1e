package collections

import (
	"github.com/tuannh982/listset/utils/observer"
)

const (
	OpAdd      = "Set::add"
	OpRemove   = "Set::remove"
	OpContains = "Set::contains"
)

type node[V comparable] struct {
	value V
	next  *node[V]
}

// linkedSet keeps its values in a singly linked chain in insertion order.
// No two nodes of the chain hold equal values.
type linkedSet[V comparable] struct {
	head *node[V]
	size int
	obs  observer.Observer
}

// NewLinkedSet returns an empty list backed set. Every operation reports one
// event to obs; a nil obs discards them.
func NewLinkedSet[V comparable](obs observer.Observer) Set[V] {
	if obs == nil {
		obs = observer.Nop
	}
	return &linkedSet[V]{
		obs: obs,
	}
}

func (s *linkedSet[V]) Contains(v V) bool {
	s.obs.Observe(observer.Event{Op: OpContains})
	for it := s.head; it != nil; it = it.next {
		if it.value == v {
			return true
		}
	}
	return false
}

func (s *linkedSet[V]) Add(v V) bool {
	s.obs.Observe(observer.Event{Op: OpAdd})
	if s.head == nil {
		s.head = &node[V]{value: v}
		s.size++
		return true
	}
	last := s.head
	for it := s.head; it != nil; it = it.next {
		if it.value == v {
			return false
		}
		last = it
	}
	last.next = &node[V]{value: v}
	s.size++
	return true
}

func (s *linkedSet[V]) Remove(v V) bool {
	s.obs.Observe(observer.Event{Op: OpRemove})
	var prev *node[V]
	for it := s.head; it != nil; prev, it = it, it.next {
		if it.value != v {
			continue
		}
		// predecessor takes over the successor before the node is dropped
		if prev == nil {
			s.head = it.next
		} else {
			prev.next = it.next
		}
		it.next = nil
		s.size--
		return true
	}
	return false
}

func (s *linkedSet[V]) Size() int {
	return s.size
}

package collections

// hashSet is the map backed reference implementation used as an oracle.
type hashSet[V comparable] struct {
	entries map[V]struct{}
}

func NewHashSet[V comparable]() Set[V] {
	return &hashSet[V]{
		entries: make(map[V]struct{}),
	}
}

func (s *hashSet[V]) Contains(v V) bool {
	if _, ok := s.entries[v]; ok {
		return true
	}
	return false
}

func (s *hashSet[V]) Add(v V) bool {
	if s.Contains(v) {
		return false
	}
	s.entries[v] = struct{}{}
	return true
}

func (s *hashSet[V]) Remove(v V) bool {
	if !s.Contains(v) {
		return false
	}
	delete(s.entries, v)
	return true
}

func (s *hashSet[V]) Size() int {
	return len(s.entries)
}

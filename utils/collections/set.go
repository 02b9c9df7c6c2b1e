package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) bool
	Remove(v V) bool
	Size() int
}

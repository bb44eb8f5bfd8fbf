package iterator

import "iter"

// Entry is an element that carries data of type T.
type Entry[T any] interface {
	Data() T
}

// Iterator walks a sequence of entries once.
type Iterator[E any] interface {
	// HasNext reports whether Next would return an entry.
	HasNext() bool
	// Next returns the next entry, or false when the sequence is exhausted.
	Next() (E, bool)
}

// Repository is a collection that can hand out iterators.
type Repository[E any] interface {
	Iterator() Iterator[E]
}

// All adapts it to an iter.Seq. The sequence consumes it.
func All[E any](it Iterator[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

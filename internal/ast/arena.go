package ast

type Arena[T any] struct {
	data []T
}

// NewArena creates and returns an *Arena[T] whose internal slice is allocated
// with a capacity of capHint. capHint is only a hint; zero is allowed.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data))
}

func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// AppendRun copies values into the arena as one contiguous run and returns
// the stored run. Later appends may move the arena's backing array, but runs
// handed out earlier stay valid: they keep pointing into the storage they
// were written to.
func (a *Arena[T]) AppendRun(values []T) []T {
	start := len(a.data)
	a.data = append(a.data, values...)
	return a.data[start:len(a.data):len(a.data)]
}

// READONLY
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}

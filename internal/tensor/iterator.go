package tensor

// Iterator is a cursor over one fiber of a View.
//
// It holds a linear position in the view's full flattened space and moves by
// the active axis offset (or 1 without an axis). Iterators are values: copying
// one yields an independent cursor.
type Iterator[T any] struct {
	view *View[T]
	pos  int
	step int
}

// Value returns the element at the current position.
// Must not be called on an end iterator.
func (it Iterator[T]) Value() T {
	return it.view.data[it.pos]
}

// Set writes v at the current position.
func (it Iterator[T]) Set(v T) {
	it.view.data[it.pos] = v
}

// Pos returns the current linear position in the flattened buffer.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next advances one step and returns the advanced iterator (++it).
func (it *Iterator[T]) Next() Iterator[T] {
	it.pos += it.step
	return *it
}

// PostNext advances one step and returns the iterator as it was before (it++).
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.pos += it.step
	return prev
}

// Prev moves one step back and returns the moved iterator (--it).
func (it *Iterator[T]) Prev() Iterator[T] {
	it.pos -= it.step
	return *it
}

// Advance returns a copy moved n steps (n may be negative).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.pos += n * it.step
	return it
}

// Equal reports whether both iterators reference the same position of the same view.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.view == other.view && it.pos == other.pos
}

// Sub returns the signed number of steps from other to it (it - other).
// Both iterators must walk the same fiber.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return (it.pos - other.pos) / it.step
}

// Distance returns the number of steps from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return last.Sub(first)
}

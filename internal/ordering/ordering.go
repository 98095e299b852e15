// Package ordering maintains the dense integer order sequences used for
// cards within a column, columns within a board and widgets on the
// dashboard strip. All functions are pure: inputs are never mutated and
// callers decide which of the returned elements to persist.
package ordering

import "sort"

// Shift returns a copy of list with the element at from moved to index to,
// shifting everything in between by one. Out-of-range indices and
// from == to return the list unchanged.
func Shift[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)
	if from == to || from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		return out
	}
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out
}

// Reorder moves the element at from to index to and renumbers every element
// to order = position+1, in ascending position order. set must return the
// element with the given order applied. from == to is an identity move but
// still renumbers, so a list with stale or duplicate orders comes out dense.
func Reorder[T any](list []T, from, to int, set func(T, int) T) []T {
	out := Shift(list, from, to)
	for i := range out {
		out[i] = set(out[i], i+1)
	}
	return out
}

// MoveAcross removes the element at srcIndex from src and inserts it into
// dst at dstIndex with order = dstIndex+1. Only the moved element's order is
// assigned; neither the remaining source orders nor the existing destination
// orders are touched, so the destination may end up with a duplicate order.
// Render order stays deterministic because SortByOrder is stable.
func MoveAcross[T any](src, dst []T, srcIndex, dstIndex int, set func(T, int) T) ([]T, []T) {
	newSrc := make([]T, len(src))
	copy(newSrc, src)
	if srcIndex < 0 || srcIndex >= len(newSrc) {
		newDst := make([]T, len(dst))
		copy(newDst, dst)
		return newSrc, newDst
	}
	item := newSrc[srcIndex]
	newSrc = append(newSrc[:srcIndex], newSrc[srcIndex+1:]...)

	if dstIndex < 0 {
		dstIndex = 0
	}
	if dstIndex > len(dst) {
		dstIndex = len(dst)
	}
	item = set(item, dstIndex+1)

	newDst := make([]T, 0, len(dst)+1)
	newDst = append(newDst, dst[:dstIndex]...)
	newDst = append(newDst, item)
	newDst = append(newDst, dst[dstIndex:]...)
	return newSrc, newDst
}

// NextOrder returns max(orders)+1, or 1 for an empty list. Used when
// appending to the end of a sibling list.
func NextOrder[T any](list []T, order func(T) int) int {
	max := 0
	for _, item := range list {
		if o := order(item); o > max {
			max = o
		}
	}
	return max + 1
}

// SortByOrder returns a copy of list stably sorted by ascending order value.
// Equal (or missing, i.e. zero) orders keep their arrival position, so ties
// never thrash between refreshes.
func SortByOrder[T any](list []T, order func(T) int) []T {
	out := make([]T, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return order(out[i]) < order(out[j])
	})
	return out
}

// IndexOf returns the position of the first element matching pred, or -1.
func IndexOf[T any](list []T, pred func(T) bool) int {
	for i, item := range list {
		if pred(item) {
			return i
		}
	}
	return -1
}

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskcherry/internal/ordering"
)

type item struct {
	Name  string
	Order int
}

func setOrder(it item, o int) item {
	it.Order = o
	return it
}

func names(list []item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.Name
	}
	return out
}

func orders(list []item) []int {
	out := make([]int, len(list))
	for i, it := range list {
		out[i] = it.Order
	}
	return out
}

func TestShift_MovesElementBetweenPositions(t *testing.T) {
	list := []item{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}

	assert.Equal(t, []string{"b", "c", "a", "d"}, names(ordering.Shift(list, 0, 2)))
	assert.Equal(t, []string{"d", "a", "b", "c"}, names(ordering.Shift(list, 3, 0)))
}

func TestShift_IgnoresOutOfRangeAndIdentity(t *testing.T) {
	list := []item{{Name: "a"}, {Name: "b"}}

	assert.Equal(t, names(list), names(ordering.Shift(list, 1, 1)))
	assert.Equal(t, names(list), names(ordering.Shift(list, -1, 0)))
	assert.Equal(t, names(list), names(ordering.Shift(list, 0, 5)))
}

func TestReorder_RenumbersDense(t *testing.T) {
	list := []item{
		{Name: "a", Order: 1},
		{Name: "b", Order: 2},
		{Name: "c", Order: 3},
	}

	// Dragging c onto a puts c first and every element gets order = pos+1.
	out := ordering.Reorder(list, 2, 0, setOrder)
	assert.Equal(t, []string{"c", "a", "b"}, names(out))
	assert.Equal(t, []int{1, 2, 3}, orders(out))

	// Source list is untouched.
	assert.Equal(t, []int{1, 2, 3}, orders(list))
	assert.Equal(t, []string{"a", "b", "c"}, names(list))
}

func TestReorder_IdentityMoveStillRenumbers(t *testing.T) {
	// Stale, gappy orders come out dense even when nothing moves.
	list := []item{
		{Name: "a", Order: 3},
		{Name: "b", Order: 3},
		{Name: "c", Order: 9},
	}

	out := ordering.Reorder(list, 1, 1, setOrder)
	assert.Equal(t, []string{"a", "b", "c"}, names(out))
	assert.Equal(t, []int{1, 2, 3}, orders(out))
}

func TestReorder_Boundaries(t *testing.T) {
	list := []item{
		{Name: "a", Order: 1},
		{Name: "b", Order: 2},
		{Name: "c", Order: 3},
	}

	out := ordering.Reorder(list, 0, 2, setOrder)
	assert.Equal(t, []string{"b", "c", "a"}, names(out))
	assert.Equal(t, []int{1, 2, 3}, orders(out))
}

func TestMoveAcross_OnlyMovedElementGetsOrder(t *testing.T) {
	src := []item{
		{Name: "a", Order: 1},
		{Name: "b", Order: 2},
		{Name: "c", Order: 3},
	}
	dst := []item{
		{Name: "x", Order: 1},
		{Name: "y", Order: 2},
	}

	newSrc, newDst := ordering.MoveAcross(src, dst, 1, 1, setOrder)

	assert.Equal(t, []string{"a", "c"}, names(newSrc))
	// Remaining source orders keep their old values; no renumber.
	assert.Equal(t, []int{1, 3}, orders(newSrc))

	assert.Equal(t, []string{"x", "b", "y"}, names(newDst))
	// The moved element takes slot dstIndex+1, y keeps its old order so the
	// destination now holds a duplicate. That is expected.
	assert.Equal(t, []int{1, 2, 2}, orders(newDst))

	// Inputs are untouched.
	assert.Equal(t, []int{1, 2, 3}, orders(src))
	assert.Equal(t, []int{1, 2}, orders(dst))
}

func TestMoveAcross_ClampsDestinationIndex(t *testing.T) {
	src := []item{{Name: "a", Order: 1}}
	dst := []item{{Name: "x", Order: 1}}

	_, newDst := ordering.MoveAcross(src, dst, 0, 10, setOrder)
	assert.Equal(t, []string{"x", "a"}, names(newDst))
	assert.Equal(t, 2, newDst[1].Order)
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 1, ordering.NextOrder(nil, func(i item) int { return i.Order }))

	list := []item{{Order: 2}, {Order: 7}, {Order: 5}}
	assert.Equal(t, 8, ordering.NextOrder(list, func(i item) int { return i.Order }))
}

func TestSortByOrder_StableOnTies(t *testing.T) {
	list := []item{
		{Name: "late", Order: 3},
		{Name: "first-tie", Order: 1},
		{Name: "second-tie", Order: 1},
	}

	out := ordering.SortByOrder(list, func(i item) int { return i.Order })
	assert.Equal(t, []string{"first-tie", "second-tie", "late"}, names(out))
}

func TestIndexOf(t *testing.T) {
	list := []item{{Name: "a"}, {Name: "b"}}

	assert.Equal(t, 1, ordering.IndexOf(list, func(i item) bool { return i.Name == "b" }))
	assert.Equal(t, -1, ordering.IndexOf(list, func(i item) bool { return i.Name == "z" }))
}

// Package dnd turns drag-and-drop gestures into persistence plans. A drag
// ends with an active item and whatever it was dropped over; the planners
// here classify that target and emit the minimal set of updates, mirroring
// the optimistic reordering the board UI performs before any write lands.
package dnd

import (
	"github.com/google/uuid"

	"taskcherry/internal/model"
	"taskcherry/internal/ordering"
)

// CardPlanKind classifies what a finished card drag means.
type CardPlanKind int

const (
	// CardPlanNone: dropped outside any target, onto itself, or onto an
	// unknown id. Nothing to persist.
	CardPlanNone CardPlanKind = iota
	// CardPlanAppend: dropped on a column body; the card goes to the end of
	// that column. One update.
	CardPlanAppend
	// CardPlanReorder: dropped on a sibling in the same column; the whole
	// column is renumbered 1..N. One update per card in the column.
	CardPlanReorder
	// CardPlanMove: dropped on a card in another column; the card takes that
	// card's slot. One update, destination is not renumbered.
	CardPlanMove
)

// CardUpdate is a single card write the plan requires.
type CardUpdate struct {
	ID       uuid.UUID
	ColumnID uuid.UUID
	Order    int
}

// CardPlan is the persistence outcome of one card drag.
type CardPlan struct {
	Kind    CardPlanKind
	Updates []CardUpdate
}

// PlanCardDrop classifies overID against the board's cards and columns and
// plans the writes for dropping activeID there. Cross-column moves
// deliberately leave the destination's other orders alone, so the moved card
// may tie with the card that held the slot; the stable order sort keeps the
// display deterministic either way.
func PlanCardDrop(cards []model.Card, columns []model.Column, activeID, overID uuid.UUID) CardPlan {
	activeIdx := ordering.IndexOf(cards, func(c model.Card) bool { return c.ID == activeID })
	if activeIdx < 0 || overID == uuid.Nil || activeID == overID {
		return CardPlan{Kind: CardPlanNone}
	}
	active := cards[activeIdx]

	// Dropped on a column body: append to the end of that column. The max
	// runs over the column's current occupants, the active card included if
	// it already lives there.
	if colIdx := ordering.IndexOf(columns, func(c model.Column) bool { return c.ID == overID }); colIdx >= 0 {
		target := columns[colIdx]
		columnCards := cardsOfColumn(cards, target.ID)
		order := ordering.NextOrder(columnCards, func(c model.Card) int { return c.Order })
		return CardPlan{
			Kind:    CardPlanAppend,
			Updates: []CardUpdate{{ID: active.ID, ColumnID: target.ID, Order: order}},
		}
	}

	overIdx := ordering.IndexOf(cards, func(c model.Card) bool { return c.ID == overID })
	if overIdx < 0 {
		return CardPlan{Kind: CardPlanNone}
	}
	over := cards[overIdx]

	if active.ColumnID == over.ColumnID {
		// Same-column reorder over the manual sequence.
		columnCards := sortedColumn(cards, active.ColumnID)
		from := ordering.IndexOf(columnCards, func(c model.Card) bool { return c.ID == active.ID })
		to := ordering.IndexOf(columnCards, func(c model.Card) bool { return c.ID == over.ID })
		reordered := ordering.Reorder(columnCards, from, to, func(c model.Card, o int) model.Card {
			c.Order = o
			return c
		})
		updates := make([]CardUpdate, len(reordered))
		for i, c := range reordered {
			updates[i] = CardUpdate{ID: c.ID, ColumnID: c.ColumnID, Order: c.Order}
		}
		return CardPlan{Kind: CardPlanReorder, Updates: updates}
	}

	// Cross-column: take the target card's slot in its column.
	destCards := sortedColumn(cards, over.ColumnID)
	targetIdx := ordering.IndexOf(destCards, func(c model.Card) bool { return c.ID == over.ID })
	return CardPlan{
		Kind:    CardPlanMove,
		Updates: []CardUpdate{{ID: active.ID, ColumnID: over.ColumnID, Order: targetIdx + 1}},
	}
}

// OrderUpdate is a single order write for a column or widget reorder.
type OrderUpdate struct {
	ID    uuid.UUID
	Order int
}

// PlanColumnDrop plans a column-header drag. Columns reorder over the full
// board array: pinned and unpinned are separate drop zones visually but
// share one order sequence. Returns nil when nothing moves.
func PlanColumnDrop(columns []model.Column, activeID, overID uuid.UUID) []OrderUpdate {
	sorted := ordering.SortByOrder(columns, func(c model.Column) int { return c.Order })
	from := ordering.IndexOf(sorted, func(c model.Column) bool { return c.ID == activeID })
	to := ordering.IndexOf(sorted, func(c model.Column) bool { return c.ID == overID })
	if from < 0 || to < 0 || from == to {
		return nil
	}
	reordered := ordering.Reorder(sorted, from, to, func(c model.Column, o int) model.Column {
		c.Order = o
		return c
	})
	updates := make([]OrderUpdate, len(reordered))
	for i, c := range reordered {
		updates[i] = OrderUpdate{ID: c.ID, Order: c.Order}
	}
	return updates
}

// PlanWidgetDrop plans a widget drag on the dashboard strip. Widgets only
// ever reorder within their board. Returns nil when nothing moves.
func PlanWidgetDrop(widgets []model.Widget, activeID, overID uuid.UUID) []OrderUpdate {
	sorted := ordering.SortByOrder(widgets, func(w model.Widget) int { return w.Order })
	from := ordering.IndexOf(sorted, func(w model.Widget) bool { return w.ID == activeID })
	to := ordering.IndexOf(sorted, func(w model.Widget) bool { return w.ID == overID })
	if from < 0 || to < 0 || from == to {
		return nil
	}
	reordered := ordering.Reorder(sorted, from, to, func(w model.Widget, o int) model.Widget {
		w.Order = o
		return w
	})
	updates := make([]OrderUpdate, len(reordered))
	for i, w := range reordered {
		updates[i] = OrderUpdate{ID: w.ID, Order: w.Order}
	}
	return updates
}

// PlanBoardDrop plans a board-tab drag; tabs reorder the same way widgets
// do. Returns nil when nothing moves.
func PlanBoardDrop(boards []model.Board, activeID, overID uuid.UUID) []OrderUpdate {
	sorted := ordering.SortByOrder(boards, func(b model.Board) int { return b.Order })
	from := ordering.IndexOf(sorted, func(b model.Board) bool { return b.ID == activeID })
	to := ordering.IndexOf(sorted, func(b model.Board) bool { return b.ID == overID })
	if from < 0 || to < 0 || from == to {
		return nil
	}
	reordered := ordering.Reorder(sorted, from, to, func(b model.Board, o int) model.Board {
		b.Order = o
		return b
	})
	updates := make([]OrderUpdate, len(reordered))
	for i, b := range reordered {
		updates[i] = OrderUpdate{ID: b.ID, Order: b.Order}
	}
	return updates
}

func cardsOfColumn(cards []model.Card, columnID uuid.UUID) []model.Card {
	var out []model.Card
	for _, c := range cards {
		if c.ColumnID == columnID {
			out = append(out, c)
		}
	}
	return out
}

func sortedColumn(cards []model.Card, columnID uuid.UUID) []model.Card {
	return ordering.SortByOrder(cardsOfColumn(cards, columnID), func(c model.Card) int { return c.Order })
}

package ordering

import (
	"sort"
	"strings"
	"time"

	"taskcherry/internal/model"
)

// Note date formats accepted by the date sort modes, tried in order. The
// generic layouts are a fallback for notes written by hand in other shapes.
var noteDateLayouts = []string{
	"02.01.2006",
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006 15:04",
}

// ParseNoteDate opportunistically parses a date out of a card's free-text
// note. The second return is false when the note holds no recognizable date.
func ParseNoteDate(note string) (time.Time, bool) {
	note = strings.TrimSpace(note)
	if note == "" {
		return time.Time{}, false
	}
	for _, layout := range noteDateLayouts {
		if t, err := time.Parse(layout, note); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Project returns the card sequence a column displays for its sort_by
// setting. This is a render-time view only: it never writes back into the
// order fields, and drag-and-drop index math always runs on the manual
// sequence, not on this projection.
func Project(cards []model.Card, sortBy string) []model.Card {
	out := make([]model.Card, len(cards))
	copy(out, cards)

	switch sortBy {
	case model.SortPriorityHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return priorityOf(out[i]) > priorityOf(out[j])
		})
	case model.SortPriorityLow:
		sort.SliceStable(out, func(i, j int) bool {
			return priorityOf(out[i]) < priorityOf(out[j])
		})
	case model.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case model.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case model.SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	case model.SortDateAsc:
		sortByNoteDate(out, true)
	case model.SortDateDesc:
		sortByNoteDate(out, false)
	default: // model.SortManual and anything unknown
		return SortByOrder(out, func(c model.Card) int { return c.Order })
	}
	return out
}

func priorityOf(c model.Card) int {
	if c.Priority == nil {
		return 0
	}
	return *c.Priority
}

// sortByNoteDate orders cards by the date parsed from their note. Cards
// whose note holds no date go last in both directions.
func sortByNoteDate(cards []model.Card, asc bool) {
	type dated struct {
		t  time.Time
		ok bool
	}
	parsed := make([]dated, len(cards))
	for i, c := range cards {
		t, ok := ParseNoteDate(c.Note)
		parsed[i] = dated{t, ok}
	}
	idx := make([]int, len(cards))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := parsed[idx[a]], parsed[idx[b]]
		if pa.ok != pb.ok {
			return pa.ok
		}
		if !pa.ok {
			return false
		}
		if asc {
			return pa.t.Before(pb.t)
		}
		return pa.t.After(pb.t)
	})
	out := make([]model.Card, len(cards))
	for i, j := range idx {
		out[i] = cards[j]
	}
	copy(cards, out)
}

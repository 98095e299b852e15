// Package dashboard computes the value and progress shown on dashboard
// widgets from the current cards and columns of a board. Everything here is
// pure; the handler layer feeds it live state, the report viewer feeds it a
// snapshot.
package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"taskcherry/internal/model"
)

// Value returns the display string for a widget. Money values carry the
// currency prefix, target_percentage renders as "%N", counters render as
// plain integers. Unknown widget types render as "0".
func Value(w model.Widget, cards []model.Card, columns []model.Column) string {
	s := w.Settings

	switch w.WidgetType {
	case model.WidgetTotalCards:
		return strconv.Itoa(len(cards))

	case model.WidgetTotalPrice:
		included := cards
		if len(s.ExcludedColumns) > 0 {
			included = excludeColumns(cards, s.ExcludedColumns)
		}
		return FormatLira(sumPrice(included))

	case model.WidgetHighPriority:
		return strconv.Itoa(countHighPriority(cards))

	case model.WidgetColumnCount:
		return strconv.Itoa(len(columns))

	case model.WidgetColumnCards:
		if s.ColumnID == nil {
			return "0"
		}
		return strconv.Itoa(len(cardsInColumn(cards, *s.ColumnID)))

	case model.WidgetColumnTotal:
		if s.ColumnID == nil {
			return FormatLira(0)
		}
		return FormatLira(sumPrice(cardsInColumn(cards, *s.ColumnID)))

	case model.WidgetPinnedTotal:
		return FormatLira(sumPrice(cardsInPinnedColumns(cards, columns)))

	case model.WidgetAveragePrice:
		if len(cards) == 0 {
			return FormatLira(0)
		}
		return FormatLira(sumPrice(cards) / float64(len(cards)))

	case model.WidgetCustomText:
		text := s.CustomText
		if text == "" {
			text = "-"
		}
		// Bare positive numbers get the currency prefix; anything already
		// carrying the mark, or non-numeric text, passes through verbatim.
		if v, ok := parseLoosePrice(text); ok && v > 0 && !strings.Contains(text, CurrencySymbol) {
			return FormatLira(v)
		}
		return text

	case model.WidgetTargetRemaining:
		if s.ColumnID == nil {
			return FormatLira(s.TargetValue)
		}
		return FormatLira(s.TargetValue - sumPrice(cardsInColumn(cards, *s.ColumnID)))

	case model.WidgetTargetPercentage:
		if s.TargetValue == 0 || s.ColumnID == nil {
			return formatPercent(0)
		}
		colSum := sumPrice(cardsInColumn(cards, *s.ColumnID))
		if mode(s) == model.PercentageRemaining {
			return formatPercent(math.Max((s.TargetValue-colSum)/s.TargetValue*100, 0))
		}
		return formatPercent(math.Min(colSum/s.TargetValue*100, 100))
	}

	return "0"
}

// Progress returns the widget's progress-bar percentage, always within
// [0,100]. Types without a meaningful ratio report 0. Denominators are
// zero-guarded so an empty board never yields NaN or Inf.
func Progress(w model.Widget, cards []model.Card, columns []model.Column) float64 {
	s := w.Settings

	var p float64
	switch w.WidgetType {
	case model.WidgetHighPriority:
		if len(cards) == 0 {
			return 0
		}
		p = float64(countHighPriority(cards)) / float64(len(cards)) * 100

	case model.WidgetColumnCards:
		if len(cards) == 0 || s.ColumnID == nil {
			return 0
		}
		p = float64(len(cardsInColumn(cards, *s.ColumnID))) / float64(len(cards)) * 100

	case model.WidgetColumnTotal:
		if s.ColumnID == nil {
			return 0
		}
		total := sumPrice(cards)
		if total == 0 {
			return 0
		}
		p = sumPrice(cardsInColumn(cards, *s.ColumnID)) / total * 100

	case model.WidgetTargetRemaining:
		if s.TargetValue == 0 || s.ColumnID == nil {
			return 0
		}
		colSum := sumPrice(cardsInColumn(cards, *s.ColumnID))
		p = (s.TargetValue - colSum) / s.TargetValue * 100

	case model.WidgetTargetPercentage:
		if s.TargetValue == 0 || s.ColumnID == nil {
			return 0
		}
		colSum := sumPrice(cardsInColumn(cards, *s.ColumnID))
		if mode(s) == model.PercentageRemaining {
			p = (s.TargetValue - colSum) / s.TargetValue * 100
		} else {
			p = colSum / s.TargetValue * 100
		}

	default:
		return 0
	}

	return math.Max(0, math.Min(100, p))
}

func mode(s model.WidgetSettings) string {
	if s.PercentageMode == "" {
		return model.PercentageCompleted
	}
	return s.PercentageMode
}

func sumPrice(cards []model.Card) float64 {
	var sum float64
	for _, c := range cards {
		sum += c.Price
	}
	return sum
}

func countHighPriority(cards []model.Card) int {
	n := 0
	for _, c := range cards {
		if c.Priority != nil && *c.Priority >= 4 {
			n++
		}
	}
	return n
}

func cardsInColumn(cards []model.Card, columnID uuid.UUID) []model.Card {
	var out []model.Card
	for _, c := range cards {
		if c.ColumnID == columnID {
			out = append(out, c)
		}
	}
	return out
}

func cardsInPinnedColumns(cards []model.Card, columns []model.Column) []model.Card {
	pinned := make(map[uuid.UUID]bool, len(columns))
	for _, col := range columns {
		if col.Pinned {
			pinned[col.ID] = true
		}
	}
	var out []model.Card
	for _, c := range cards {
		if pinned[c.ColumnID] {
			out = append(out, c)
		}
	}
	return out
}

func excludeColumns(cards []model.Card, excluded []uuid.UUID) []model.Card {
	skip := make(map[uuid.UUID]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}
	var out []model.Card
	for _, c := range cards {
		if !skip[c.ColumnID] {
			out = append(out, c)
		}
	}
	return out
}

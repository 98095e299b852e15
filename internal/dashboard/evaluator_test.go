package dashboard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"taskcherry/internal/dashboard"
	"taskcherry/internal/model"
)

func widget(widgetType string, settings model.WidgetSettings) model.Widget {
	return model.Widget{WidgetType: widgetType, Settings: settings}
}

func priced(columnID uuid.UUID, price float64) model.Card {
	return model.Card{ID: uuid.New(), ColumnID: columnID, Price: price}
}

func prioritized(p int) model.Card {
	return model.Card{ID: uuid.New(), Priority: &p}
}

func TestFormatLira(t *testing.T) {
	cases := map[float64]string{
		0:        "₺0",
		1500:     "₺1.500",
		1234567:  "₺1.234.567",
		12.5:     "₺12,50",
		999.99:   "₺999,99",
		-1500.25: "₺-1.500,25",
	}
	for v, want := range cases {
		assert.Equal(t, want, dashboard.FormatLira(v))
	}
}

func TestFormatLira_WholeAmountsDropFraction(t *testing.T) {
	// 100.00 renders without decimals, 100.004 rounds down to them too.
	assert.Equal(t, "₺100", dashboard.FormatLira(100.00))
	assert.Equal(t, "₺100", dashboard.FormatLira(100.004))
	assert.Equal(t, "₺100,01", dashboard.FormatLira(100.01))
}

func TestValue_TotalCards(t *testing.T) {
	w := widget(model.WidgetTotalCards, model.WidgetSettings{})
	cards := []model.Card{{}, {}, {}}

	assert.Equal(t, "3", dashboard.Value(w, cards, nil))
	assert.Equal(t, "0", dashboard.Value(w, nil, nil))
}

func TestValue_TotalPrice_HonoursExcludedColumns(t *testing.T) {
	keep := uuid.New()
	skip := uuid.New()
	cards := []model.Card{
		priced(keep, 1000),
		priced(keep, 500),
		priced(skip, 9999),
	}

	all := widget(model.WidgetTotalPrice, model.WidgetSettings{})
	assert.Equal(t, "₺11.499", dashboard.Value(all, cards, nil))

	filtered := widget(model.WidgetTotalPrice, model.WidgetSettings{
		ExcludedColumns: []uuid.UUID{skip},
	})
	assert.Equal(t, "₺1.500", dashboard.Value(filtered, cards, nil))
}

func TestValue_HighPriority_CountsFourAndAbove(t *testing.T) {
	cards := []model.Card{
		prioritized(5),
		prioritized(4),
		prioritized(3),
		{ID: uuid.New()}, // no priority set
	}

	w := widget(model.WidgetHighPriority, model.WidgetSettings{})
	assert.Equal(t, "2", dashboard.Value(w, cards, nil))
}

func TestValue_ColumnScopedWidgets(t *testing.T) {
	colID := uuid.New()
	other := uuid.New()
	cards := []model.Card{
		priced(colID, 100),
		priced(colID, 200),
		priced(other, 999),
	}

	counts := widget(model.WidgetColumnCards, model.WidgetSettings{ColumnID: &colID})
	assert.Equal(t, "2", dashboard.Value(counts, cards, nil))

	total := widget(model.WidgetColumnTotal, model.WidgetSettings{ColumnID: &colID})
	assert.Equal(t, "₺300", dashboard.Value(total, cards, nil))

	// A widget whose column was never picked reports zero, not an error.
	unbound := widget(model.WidgetColumnCards, model.WidgetSettings{})
	assert.Equal(t, "0", dashboard.Value(unbound, cards, nil))
}

func TestValue_PinnedTotal(t *testing.T) {
	pinned := model.Column{ID: uuid.New(), Pinned: true}
	loose := model.Column{ID: uuid.New()}
	cards := []model.Card{
		priced(pinned.ID, 250),
		priced(pinned.ID, 250),
		priced(loose.ID, 10000),
	}

	w := widget(model.WidgetPinnedTotal, model.WidgetSettings{})
	assert.Equal(t, "₺500", dashboard.Value(w, cards, []model.Column{pinned, loose}))
}

func TestValue_AveragePrice_EmptyBoardIsZeroNotNaN(t *testing.T) {
	w := widget(model.WidgetAveragePrice, model.WidgetSettings{})

	assert.Equal(t, "₺0", dashboard.Value(w, nil, nil))

	colID := uuid.New()
	cards := []model.Card{priced(colID, 100), priced(colID, 200)}
	assert.Equal(t, "₺150", dashboard.Value(w, cards, nil))
}

func TestValue_CustomText(t *testing.T) {
	cases := map[string]string{
		"":            "-",
		"hello there": "hello there",
		"1500":        "₺1.500",
		"₺1.500":      "₺1.500",
		"-5":          "-5",
	}
	for text, want := range cases {
		w := widget(model.WidgetCustomText, model.WidgetSettings{CustomText: text})
		assert.Equal(t, want, dashboard.Value(w, nil, nil), text)
	}
}

func TestValue_TargetRemaining(t *testing.T) {
	colID := uuid.New()
	cards := []model.Card{priced(colID, 300)}

	w := widget(model.WidgetTargetRemaining, model.WidgetSettings{
		ColumnID:    &colID,
		TargetValue: 1000,
	})
	assert.Equal(t, "₺700", dashboard.Value(w, cards, nil))

	// Overshooting the target goes negative rather than clamping.
	over := []model.Card{priced(colID, 1200)}
	assert.Equal(t, "₺-200", dashboard.Value(w, over, nil))
}

func TestValue_TargetPercentage(t *testing.T) {
	colID := uuid.New()
	cards := []model.Card{priced(colID, 250)}

	completed := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:       &colID,
		TargetValue:    1000,
		PercentageMode: model.PercentageCompleted,
	})
	assert.Equal(t, "%25", dashboard.Value(completed, cards, nil))

	remaining := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:       &colID,
		TargetValue:    1000,
		PercentageMode: model.PercentageRemaining,
	})
	assert.Equal(t, "%75", dashboard.Value(remaining, cards, nil))
}

func TestValue_TargetPercentage_ZeroTarget(t *testing.T) {
	colID := uuid.New()
	w := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:    &colID,
		TargetValue: 0,
	})

	assert.Equal(t, "%0", dashboard.Value(w, []model.Card{priced(colID, 100)}, nil))
}

func TestValue_TargetPercentage_ClampsAtBounds(t *testing.T) {
	colID := uuid.New()
	cards := []model.Card{priced(colID, 5000)}

	completed := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:       &colID,
		TargetValue:    1000,
		PercentageMode: model.PercentageCompleted,
	})
	assert.Equal(t, "%100", dashboard.Value(completed, cards, nil))

	remaining := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:       &colID,
		TargetValue:    1000,
		PercentageMode: model.PercentageRemaining,
	})
	assert.Equal(t, "%0", dashboard.Value(remaining, cards, nil))
}

func TestValue_UnknownTypeRendersZero(t *testing.T) {
	w := widget("made_up", model.WidgetSettings{})
	assert.Equal(t, "0", dashboard.Value(w, nil, nil))
}

func TestProgress_AlwaysWithinBounds(t *testing.T) {
	colID := uuid.New()
	overshooting := []model.Card{priced(colID, 99999)}

	for _, widgetType := range model.WidgetTypes {
		w := widget(widgetType, model.WidgetSettings{
			ColumnID:    &colID,
			TargetValue: 100,
		})
		p := dashboard.Progress(w, overshooting, nil)
		assert.GreaterOrEqual(t, p, 0.0, widgetType)
		assert.LessOrEqual(t, p, 100.0, widgetType)
	}
}

func TestProgress_EmptyBoardNeverNaN(t *testing.T) {
	colID := uuid.New()
	for _, widgetType := range model.WidgetTypes {
		w := widget(widgetType, model.WidgetSettings{ColumnID: &colID})
		assert.Equal(t, 0.0, dashboard.Progress(w, nil, nil), widgetType)
	}
}

func TestProgress_TargetPercentageCompleted(t *testing.T) {
	colID := uuid.New()
	cards := []model.Card{priced(colID, 250)}

	w := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:       &colID,
		TargetValue:    1000,
		PercentageMode: model.PercentageCompleted,
	})
	assert.InDelta(t, 25.0, dashboard.Progress(w, cards, nil), 0.001)
}

func TestProgress_HighPriorityShare(t *testing.T) {
	cards := []model.Card{prioritized(5), prioritized(1), prioritized(2), prioritized(4)}

	w := widget(model.WidgetHighPriority, model.WidgetSettings{})
	assert.InDelta(t, 50.0, dashboard.Progress(w, cards, nil), 0.001)
}

func TestProgress_DefaultModeIsCompleted(t *testing.T) {
	colID := uuid.New()
	cards := []model.Card{priced(colID, 400)}

	w := widget(model.WidgetTargetPercentage, model.WidgetSettings{
		ColumnID:    &colID,
		TargetValue: 1000,
	})
	assert.InDelta(t, 40.0, dashboard.Progress(w, cards, nil), 0.001)
}

package tui

import (
	"strconv"
	"strings"

	"weighttrend/internal/app"
	"weighttrend/internal/domain"
)

// Glyphs drawn for each trend box.
const (
	glyphEmpty   = "·"
	glyphTarget  = "○"
	glyphActive  = "●"
	glyphClamped = "×"
)

// trendGlyph returns the plain glyph for slot i of tr.
func trendGlyph(tr domain.Trend, i int) string {
	s := tr.Slots[i]
	switch {
	case s.IsActive() && tr.Clamped:
		return glyphClamped
	case s.IsActive():
		return glyphActive
	case s.IsTarget():
		return glyphTarget
	default:
		return glyphEmpty
	}
}

func renderTrend(tr domain.Trend) string {
	cells := make([]string, len(tr.Slots))
	for i, s := range tr.Slots {
		g := trendGlyph(tr, i)
		switch {
		case s.IsActive():
			cells[i] = ActiveStyle.Render(g)
		case s.IsTarget():
			cells[i] = TargetStyle.Render(g)
		default:
			cells[i] = BoxStyle.Render(g)
		}
	}
	return strings.Join(cells, " ")
}

func formatWeight(w *float64) string {
	if w == nil {
		return ""
	}
	return strconv.FormatFloat(*w, 'f', 1, 64)
}

// renderRow draws one day: label, trend boxes, weight and comment.
func renderRow(d app.DayView, selected bool) string {
	comment := ""
	if d.Comment != nil {
		comment = *d.Comment
	}
	row := strings.Join([]string{
		DayLabelStyle.Render(d.Label),
		renderTrend(d.Trend),
		WeightStyle.Render(formatWeight(d.Weight)),
		CommentStyle.Render(comment),
	}, "  ")
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}

// RenderMonth draws the whole grid for view. cursor is the 0-based selected
// row, or -1 for none.
func RenderMonth(view *app.MonthView, cursor int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(view.Title))
	b.WriteString("\n\n")
	for i, d := range view.Days {
		b.WriteString(renderRow(d, i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

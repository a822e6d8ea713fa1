package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syncro/internal/services"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// badge renders a status or priority label in the style matching its tone.
func badge(theme *services.Theme, label string) string {
	var style lipgloss.Style
	switch label {
	case "Active", "Operational", "Completed":
		style = theme.Success
	case "Away", "Degraded", "High", "Review", "In Progress":
		style = theme.Warning
	case "Urgent", "Blocked":
		style = theme.Danger
	case "Low", "Backlog":
		style = theme.Muted
	default:
		style = theme.Neutral
	}
	return style.Render("● " + label)
}

// sparkline maps each value to a block glyph scaled against the largest value.
func sparkline(values []int) string {
	peak := 0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return strings.Repeat(string(sparkLevels[0]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		b.WriteRune(sparkLevels[v*(len(sparkLevels)-1)/peak])
	}
	return b.String()
}

// meter renders a horizontal percentage bar of the given width.
func meter(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %3d%%", percent)
}

// price formats a plan price; numeric prices are monthly dollars.
func price(p string) string {
	if _, err := strconv.Atoi(p); err == nil {
		return "$" + p + "/mo"
	}
	return p
}

// columns pads each cell to the widest cell of its column.
func columns(rows [][]string, gap int) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+gap))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

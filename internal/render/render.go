// Package render draws a MonthGrid as a cal(1)-style text sheet.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

// Options controls the styling of the rendered sheet.
// The zero value renders plain text.
type Options struct {
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	TodayStyle  lipgloss.Style

	// Styled enables the styles above. Plain sheets never contain escape codes.
	Styled bool
}

// Terminal returns the styles used when stdout is a terminal.
func Terminal() Options {
	return Options{
		TitleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorTitle)).Bold(true),
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorHeader)),
		TodayStyle:  lipgloss.NewStyle().Reverse(true).Bold(true),
		Styled:      true,
	}
}

// Sheet renders the title line, the weekday header and one line per week.
// Trailing blanks are trimmed from each line.
func Sheet(g engine.MonthGrid, opts Options) string {
	lines := []string{
		opts.style(opts.TitleStyle, center(g.MonthLabel+" "+g.YearLabel, config.SheetWidth)),
		opts.style(opts.HeaderStyle, config.SheetHeader),
	}

	for r, week := range g.Weeks() {
		cells := make([]string, 0, config.DaysPerWeek)
		for c, day := range week {
			if day == 0 {
				cells = append(cells, strings.Repeat(" ", config.SheetCellWidth))
				continue
			}
			text := pad(strconv.Itoa(day))
			if r*config.DaysPerWeek+c == g.TodayIndex {
				text = opts.style(opts.TodayStyle, text)
			}
			cells = append(cells, text)
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (o Options) style(s lipgloss.Style, text string) string {
	if !o.Styled {
		return text
	}
	return s.Render(text)
}

func pad(s string) string {
	if len(s) >= config.SheetCellWidth {
		return s
	}
	return strings.Repeat(" ", config.SheetCellWidth-len(s)) + s
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tartampluch/go-calendar/internal/config"
)

// MonthGrid is the render-ready layout of one month, Sunday first.
// It is derived from a Cursor and never mutated after BuildGrid returns.
type MonthGrid struct {
	Year  int
	Month time.Month

	// YearLabel is the decimal year, MonthLabel the full English month name.
	YearLabel  string
	MonthLabel string

	// StartWeekday is the column of day 1 (0 = Sunday).
	StartWeekday int

	// Days is the number of days in the month.
	Days int

	// Cells holds the day number of each cell; 0 means blank.
	Cells [config.GridCells]int

	// TodayIndex is the cell of the current day, or config.NoHighlight.
	TodayIndex int
}

// Cell returns the day number at index i and whether the cell holds a day.
func (g MonthGrid) Cell(i int) (int, bool) {
	if i < 0 || i >= len(g.Cells) {
		return 0, false
	}
	d := g.Cells[i]
	return d, d != 0
}

// HasToday reports whether one of the cells is the current day.
func (g MonthGrid) HasToday() bool {
	return g.TodayIndex != config.NoHighlight
}

// Weeks returns the rows that contain at least one day.
func (g MonthGrid) Weeks() [][config.DaysPerWeek]int {
	last := g.StartWeekday + g.Days - 1
	rows := last/config.DaysPerWeek + 1
	if rows > config.GridRows {
		rows = config.GridRows
	}

	weeks := make([][config.DaysPerWeek]int, rows)
	for r := range weeks {
		copy(weeks[r][:], g.Cells[r*config.DaysPerWeek:(r+1)*config.DaysPerWeek])
	}
	return weeks
}

// IsLeapYear applies the Gregorian leap-year rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in year.
// A month outside January..December is a programming error and panics.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		panic(fmt.Sprintf("%s: %d", config.ErrMonthRange, month))
	}
}

// StartWeekday returns the weekday of the first day of the month as days from Sunday.
// time.Date uses the proleptic Gregorian calendar for every year.
func StartWeekday(year int, month time.Month) int {
	mustMonth(month)
	return int(time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday())
}

// BuildGrid lays out (year, month) on the 6x7 grid and marks today's cell
// when today falls inside that month. It has no side effects.
func BuildGrid(year int, month time.Month, today time.Time) MonthGrid {
	mustMonth(month)

	g := MonthGrid{
		Year:         year,
		Month:        month,
		YearLabel:    strconv.Itoa(year),
		MonthLabel:   month.String(),
		StartWeekday: StartWeekday(year, month),
		Days:         DaysInMonth(year, month),
		TodayIndex:   config.NoHighlight,
	}

	for d := 1; d <= g.Days; d++ {
		if idx := g.StartWeekday + d - 1; idx < config.GridCells {
			g.Cells[idx] = d
		}
	}

	if today.Year() == year && today.Month() == month {
		g.TodayIndex = g.StartWeekday + today.Day() - 1
	}

	return g
}

func mustMonth(month time.Month) {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("%s: %d", config.ErrMonthRange, month))
	}
}

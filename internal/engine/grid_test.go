package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

// TestDaysInMonth checks every month against the Gregorian reference table.
func TestDaysInMonth(t *testing.T) {
	expected := map[time.Month]int{
		time.January: 31, time.February: 28, time.March: 31, time.April: 30,
		time.May: 31, time.June: 30, time.July: 31, time.August: 31,
		time.September: 30, time.October: 31, time.November: 30, time.December: 31,
	}

	for m, want := range expected {
		t.Run(m.String(), func(t *testing.T) {
			assert.Equal(t, want, engine.DaysInMonth(2023, m))
		})
	}
}

// TestDaysInMonth_AgreesWithTimePackage cross-checks the table with time.Date
// normalization over several centuries.
func TestDaysInMonth_AgreesWithTimePackage(t *testing.T) {
	for y := 1582; y <= 2400; y += 7 {
		for m := time.January; m <= time.December; m++ {
			ref := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			require.Equal(t, ref, engine.DaysInMonth(y, m), "%d-%02d", y, m)
		}
	}
}

func TestLeapYear(t *testing.T) {
	tests := []struct {
		year int
		days int
	}{
		{2000, 29},
		{1900, 28},
		{2024, 29},
		{2023, 28},
		{2100, 28},
		{2400, 29},
		{4, 29},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.days, engine.DaysInMonth(tt.year, time.February), "year %d", tt.year)
		assert.Equal(t, tt.days == 29, engine.IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInMonth_PanicsOnInvalidMonth(t *testing.T) {
	assert.Panics(t, func() { engine.DaysInMonth(2024, 0) })
	assert.Panics(t, func() { engine.DaysInMonth(2024, 13) })
	assert.Panics(t, func() { engine.BuildGrid(2024, 13, time.Now()) })
}

func TestStartWeekday(t *testing.T) {
	assert.Equal(t, 4, engine.StartWeekday(2024, time.February), "2024-02-01 is a Thursday")
	assert.Equal(t, 0, engine.StartWeekday(2023, time.January), "2023-01-01 is a Sunday")
	assert.Equal(t, 6, engine.StartWeekday(2000, time.January), "2000-01-01 is a Saturday")
	assert.Equal(t, 1, engine.StartWeekday(1, time.January), "0001-01-01 is a Monday (proleptic)")
}

// TestBuildGrid_LeapFebruary is the reference scenario: 2024-02 starts on Thursday.
func TestBuildGrid_LeapFebruary(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	g := engine.BuildGrid(2024, time.February, today)

	assert.Equal(t, "February", g.MonthLabel)
	assert.Equal(t, "2024", g.YearLabel)
	assert.Equal(t, 29, g.Days)
	assert.Equal(t, 4, g.StartWeekday)
	assert.Equal(t, 1, g.Cells[4])
	assert.Equal(t, 29, g.Cells[32])

	for i := 0; i < config.GridCells; i++ {
		if i >= 4 && i <= 32 {
			assert.Equal(t, i-3, g.Cells[i], "cell %d", i)
		} else {
			assert.Zero(t, g.Cells[i], "cell %d should be blank", i)
		}
	}

	assert.Equal(t, config.NoHighlight, g.TodayIndex)
	assert.False(t, g.HasToday())
}

// TestBuildGrid_Completeness verifies that every month of two centuries holds
// exactly 1..Days in increasing order without interior gaps.
func TestBuildGrid_Completeness(t *testing.T) {
	today := time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)

	for y := 1900; y <= 2100; y++ {
		for m := time.January; m <= time.December; m++ {
			g := engine.BuildGrid(y, m, today)
			days := engine.DaysInMonth(y, m)

			var seen []int
			first, last := -1, -1
			for i, d := range g.Cells {
				if d == 0 {
					continue
				}
				if first < 0 {
					first = i
				}
				last = i
				seen = append(seen, d)
			}

			require.Len(t, seen, days, "%d-%02d", y, m)
			for i, d := range seen {
				require.Equal(t, i+1, d, "%d-%02d", y, m)
			}
			require.Equal(t, g.StartWeekday, first)
			require.Equal(t, last-first+1, days, "no interior gaps in %d-%02d", y, m)
		}
	}
}

func TestBuildGrid_TodayHighlight(t *testing.T) {
	today := time.Date(2026, time.October, 17, 9, 30, 0, 0, time.Local)

	g := engine.BuildGrid(2026, time.October, today)
	start := engine.StartWeekday(2026, time.October)
	require.True(t, g.HasToday())
	assert.Equal(t, start+17-1, g.TodayIndex)
	assert.Equal(t, 17, g.Cells[g.TodayIndex])

	// Same month number, different year.
	assert.Equal(t, config.NoHighlight, engine.BuildGrid(2025, time.October, today).TodayIndex)
	// Same year, different month.
	assert.Equal(t, config.NoHighlight, engine.BuildGrid(2026, time.November, today).TodayIndex)
}

func TestMonthGrid_CellAndWeeks(t *testing.T) {
	g := engine.BuildGrid(2024, time.February, time.Time{})

	d, ok := g.Cell(4)
	assert.True(t, ok)
	assert.Equal(t, 1, d)

	_, ok = g.Cell(0)
	assert.False(t, ok, "leading blank")
	_, ok = g.Cell(-1)
	assert.False(t, ok)
	_, ok = g.Cell(config.GridCells)
	assert.False(t, ok)

	weeks := g.Weeks()
	require.Len(t, weeks, 5, "Feb 2024 spans five weeks")
	assert.Equal(t, [7]int{0, 0, 0, 0, 1, 2, 3}, weeks[0])
	assert.Equal(t, [7]int{25, 26, 27, 28, 29, 0, 0}, weeks[4])

	// February 2015 starts on Sunday and fills exactly four rows.
	assert.Len(t, engine.BuildGrid(2015, time.February, time.Time{}).Weeks(), 4)
	// August 2026 starts on Saturday and needs all six rows.
	assert.Len(t, engine.BuildGrid(2026, time.August, time.Time{}).Weeks(), 6)
}

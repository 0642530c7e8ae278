package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/engine"
	"github.com/tartampluch/go-calendar/internal/render"
)

func TestSheet_PlainLeapFebruary(t *testing.T) {
	g := engine.BuildGrid(2024, time.February, time.Time{})

	want := strings.Join([]string{
		"   February 2024",
		"Su Mo Tu We Th Fr Sa",
		"             1  2  3",
		" 4  5  6  7  8  9 10",
		"11 12 13 14 15 16 17",
		"18 19 20 21 22 23 24",
		"25 26 27 28 29",
	}, "\n") + "\n"

	assert.Equal(t, want, render.Sheet(g, render.Options{}))
}

func TestSheet_SixWeeks(t *testing.T) {
	g := engine.BuildGrid(2026, time.August, time.Time{})
	lines := strings.Split(strings.TrimSuffix(render.Sheet(g, render.Options{}), "\n"), "\n")

	require.Len(t, lines, 8, "title + header + six weeks")
	assert.Equal(t, "                   1", lines[2])
	assert.Equal(t, "30 31", lines[7])
}

// TestSheet_PlainHasNoEscapes guards the HTTP text view, which must stay plain
// even when today is highlighted.
func TestSheet_PlainHasNoEscapes(t *testing.T) {
	today := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	g := engine.BuildGrid(2026, time.October, today)

	out := render.Sheet(g, render.Options{})
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "October 2026")
}

func TestSheet_StyledKeepsContent(t *testing.T) {
	today := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	g := engine.BuildGrid(2026, time.October, today)

	out := render.Sheet(g, render.Terminal())
	assert.Contains(t, out, "17")
	assert.Contains(t, out, "October 2026")
	assert.Contains(t, out, "31")
}

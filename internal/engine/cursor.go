package engine

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tartampluch/go-calendar/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors returned by the text-entry transitions.
// The cursor is left untouched whenever one of them is returned.
var (
	ErrInvalidYear  = errors.New(config.ErrInvalidYear)
	ErrInvalidMonth = errors.New(config.ErrInvalidMonth)
)

// monthNames holds the lowercase English month names in calendar order.
var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Cursor is the displayed (year, month) pair.
// Transitions are value methods returning the next Cursor.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorAt returns the cursor of the month containing t.
func CursorAt(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// PrevMonth steps back one month, rolling into December of the previous year.
func (c Cursor) PrevMonth() Cursor {
	if c.Month == time.January {
		return Cursor{Year: c.Year - 1, Month: time.December}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

// NextMonth steps forward one month, rolling into January of the next year.
func (c Cursor) NextMonth() Cursor {
	if c.Month == time.December {
		return Cursor{Year: c.Year + 1, Month: time.January}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// PrevYear keeps the month and decrements the year.
func (c Cursor) PrevYear() Cursor {
	return Cursor{Year: c.Year - 1, Month: c.Month}
}

// NextYear keeps the month and increments the year.
func (c Cursor) NextYear() Cursor {
	return Cursor{Year: c.Year + 1, Month: c.Month}
}

// WithYear parses text as a year and returns the moved cursor.
func (c Cursor) WithYear(text string) (Cursor, error) {
	year, err := ParseYear(text)
	if err != nil {
		return c, err
	}
	return Cursor{Year: year, Month: c.Month}, nil
}

// WithMonth parses text as a month number or name and returns the moved cursor.
func (c Cursor) WithMonth(text string) (Cursor, error) {
	month, err := ParseMonth(text)
	if err != nil {
		return c, err
	}
	return Cursor{Year: c.Year, Month: month}, nil
}

// Grid builds the month grid of the cursor relative to today.
func (c Cursor) Grid(today time.Time) MonthGrid {
	return BuildGrid(c.Year, c.Month, today)
}

// String formats the cursor as YYYY-MM.
func (c Cursor) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

// ParseYear accepts a decimal integer strictly between config.MinYear and config.MaxYear.
func ParseYear(text string) (int, error) {
	year, err := strconv.Atoi(text)
	if err != nil || year <= config.MinYear || year >= config.MaxYear {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, text)
	}
	return year, nil
}

// ParseMonth accepts a month number in 1..12 or a full English month name in any case.
func ParseMonth(text string) (time.Month, error) {
	if n, err := strconv.Atoi(text); err == nil && n >= int(time.January) && n <= int(time.December) {
		return time.Month(n), nil
	}

	// A Caser is stateful, so one is created per call.
	folded := cases.Lower(language.Und).String(text)
	for i, name := range monthNames {
		if name == folded {
			return time.Month(i + 1), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, text)
}

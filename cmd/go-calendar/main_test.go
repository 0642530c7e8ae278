package main

import (
	"bytes"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

func newTestNavigator() *engine.Navigator {
	return engine.NewNavigator(engine.FixedClock(time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)))
}

func TestApplyInitialCursor(t *testing.T) {
	tests := []struct {
		name    string
		year    string
		month   string
		want    engine.Cursor
		wantErr error
	}{
		{"NoFlags", "", "", engine.Cursor{Year: 2026, Month: time.October}, nil},
		{"YearOnly", "1999", "", engine.Cursor{Year: 1999, Month: time.October}, nil},
		{"MonthNumber", "", "2", engine.Cursor{Year: 2026, Month: time.February}, nil},
		{"MonthName", "2024", "february", engine.Cursor{Year: 2024, Month: time.February}, nil},
		{"BadYear", "10000", "3", engine.Cursor{Year: 2026, Month: time.October}, engine.ErrInvalidYear},
		{"BadMonth", "2024", "13", engine.Cursor{Year: 2026, Month: time.October}, engine.ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := newTestNavigator()
			err := applyInitialCursor(nav, tt.year, tt.month)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), config.ErrInitialCursor)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, nav.Cursor())
		})
	}
}

func TestPrintSheet_Plain(t *testing.T) {
	nav := newTestNavigator()
	require.NoError(t, applyInitialCursor(nav, "2024", "February"))

	var buf bytes.Buffer
	printSheet(&buf, nav.Grid(), false)

	assert.Contains(t, buf.String(), "February 2024")
	assert.Contains(t, buf.String(), "25 26 27 28 29\n")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)

	assert.Contains(t, buf.String(), config.AppName)
	assert.Contains(t, buf.String(), config.Version)
	assert.Contains(t, buf.String(), runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, buf.String(), "commit "+config.Commit)
	assert.Contains(t, buf.String(), "built "+config.Date)
}

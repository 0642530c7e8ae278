package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-calendar/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DefaultPort", config.DefaultPort},
		{"SheetHeader", config.SheetHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGridGeometry pins the grid to six Sunday-first weeks.
func TestGridGeometry(t *testing.T) {
	assert.Equal(t, 7, config.DaysPerWeek)
	assert.Equal(t, 42, config.GridCells)
	assert.Equal(t, -1, config.NoHighlight)

	// 31 days starting on Saturday (offset 6) is the worst case: last index 36.
	assert.Less(t, 6+31-1, config.GridCells, "Every Gregorian month must fit in the grid")

	// Header cells line up with SheetCellWidth plus one separator.
	assert.Equal(t, config.DaysPerWeek*(config.SheetCellWidth+1)-1, config.SheetWidth)
}

// TestYearBounds documents the exclusive text-entry year range.
func TestYearBounds(t *testing.T) {
	assert.Equal(t, 0, config.MinYear)
	assert.Equal(t, 10000, config.MaxYear)
	assert.Len(t, "9999", config.MaxYearDigits)
}

// TestTimeouts ensures that operational constraints are reasonable.
func TestTimeouts(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second)
	assert.LessOrEqual(t, config.TrayTickInterval, time.Hour, "Tray date should refresh at least hourly")
	assert.Len(t, config.WeekdayKeys, config.DaysPerWeek)
}

func TestPortBounds(t *testing.T) {
	assert.Equal(t, 1, config.MinPort)
	assert.Equal(t, 65535, config.MaxPort)
}

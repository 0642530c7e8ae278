package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-calendar/internal/config"
)

// NumericalEntry is a single-line Entry that accepts only digits from the
// keyboard. Pasted text is not filtered; callers validate on submit.
type NumericalEntry struct {
	widget.Entry

	// MaxDigits caps typed input. Zero means unlimited.
	MaxDigits int
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewYearEntry returns a NumericalEntry sized for a four digit year.
func NewYearEntry() *NumericalEntry {
	entry := NewNumericalEntry()
	entry.MaxDigits = config.MaxYearDigits
	return entry
}

// TypedRune drops non-digits and anything past MaxDigits.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.MaxDigits > 0 && len(e.Text) >= e.MaxDigits && e.SelectedText() == "" {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

package ui

import (
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

// calendarView is the presentation of one MonthGrid. It observes the
// navigator while its window is open.
type calendarView struct {
	app    *GoCalendarApp
	window fyne.Window

	prevYear, prevMonth, nextMonth, nextYear, today *widget.Button
	settings                                        *widget.Button

	monthEntry *widget.Entry
	yearEntry  *NumericalEntry

	weekdays [config.DaysPerWeek]*widget.Label
	cells    [config.GridCells]*widget.Label

	detach func()
}

// ShowCalendarWindow opens the calendar window, or focuses it when already open.
func (app *GoCalendarApp) ShowCalendarWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}

	slog.Info(config.MsgWindowOpen, config.LogKeyComponent, config.CompUI)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.Window = w

	v := newCalendarView(app, w)
	app.view = v
	w.SetContent(v.layout())

	// Without a tray, closing the window ends the application.
	if app.Tray == nil {
		w.SetMaster()
	}

	w.SetOnClosed(func() {
		v.detach()
		app.Window = nil
		app.view = nil
		slog.Info(config.MsgWindowClosed, config.LogKeyComponent, config.CompUI)
	})

	v.detach = app.Navigator.Attach(v)
	w.Show()
}

func newCalendarView(app *GoCalendarApp, w fyne.Window) *calendarView {
	nav := app.Navigator
	v := &calendarView{app: app, window: w}

	v.prevYear = widget.NewButton(config.GlyphPrevYear, func() { nav.PrevYear() })
	v.prevMonth = widget.NewButton(config.GlyphPrevMonth, func() { nav.PrevMonth() })
	v.nextMonth = widget.NewButton(config.GlyphNextMonth, func() { nav.NextMonth() })
	v.nextYear = widget.NewButton(config.GlyphNextYear, func() { nav.NextYear() })
	v.today = widget.NewButton(app.GetMsg(config.TKeyBtnToday), func() { nav.Today() })
	v.settings = widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)

	v.monthEntry = widget.NewEntry()
	v.monthEntry.SetPlaceHolder(app.GetMsg(config.TKeyHintMonth))
	v.monthEntry.OnSubmitted = func(text string) {
		if _, err := nav.SetMonth(text); err != nil {
			v.syncEntries(nav.Grid())
		}
	}

	v.yearEntry = NewYearEntry()
	v.yearEntry.SetPlaceHolder(app.GetMsg(config.TKeyHintYear))
	v.yearEntry.OnSubmitted = func(text string) {
		if _, err := nav.SetYear(text); err != nil {
			v.syncEntries(nav.Grid())
		}
	}

	for i, key := range config.WeekdayKeys {
		v.weekdays[i] = widget.NewLabelWithStyle(app.GetMsg(key), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	}
	for i := range v.cells {
		v.cells[i] = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	}

	return v
}

func (v *calendarView) layout() fyne.CanvasObject {
	header := container.NewBorder(nil, nil,
		container.NewHBox(v.prevYear, v.prevMonth),
		container.NewHBox(v.nextMonth, v.nextYear, v.today, v.settings),
		container.NewGridWithColumns(2, v.monthEntry, v.yearEntry),
	)

	objects := make([]fyne.CanvasObject, 0, config.DaysPerWeek+config.GridCells)
	for _, l := range v.weekdays {
		objects = append(objects, l)
	}
	for _, l := range v.cells {
		objects = append(objects, l)
	}
	grid := container.NewGridWithColumns(config.DaysPerWeek, objects...)

	return container.NewBorder(header, nil, nil, nil, grid)
}

// Render implements engine.Observer.
func (v *calendarView) Render(g engine.MonthGrid) {
	v.window.SetTitle(fmt.Sprintf(config.FormatWindowTitle, g.MonthLabel, g.YearLabel))
	v.syncEntries(g)

	for i, l := range v.cells {
		day, ok := g.Cell(i)
		text := ""
		if ok {
			text = strconv.Itoa(day)
		}

		isToday := i == g.TodayIndex
		l.TextStyle = fyne.TextStyle{Bold: isToday}
		if isToday {
			l.Importance = widget.HighImportance
		} else {
			l.Importance = widget.MediumImportance
		}
		l.SetText(text)
	}
}

// syncEntries resets both text fields to the labels of g.
func (v *calendarView) syncEntries(g engine.MonthGrid) {
	v.monthEntry.SetText(g.MonthLabel)
	v.yearEntry.SetText(g.YearLabel)
}

package ui

import (
	"context"
	_ "embed"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
	"github.com/tartampluch/go-calendar/internal/server"
)

//go:embed Icon.png
var appIconData []byte

// GoCalendarApp wires the navigator to the fyne window, the tray and the
// optional HTTP observer.
type GoCalendarApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Navigator *engine.Navigator
	Server    *server.GridServer // nil unless sharing is enabled

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem *fyne.MenuItem
	TrayShowItem   *fyne.MenuItem
	TrayTodayItem  *fyne.MenuItem
	TraySettings   *fyne.MenuItem

	view           *calendarView
	settingsWindow fyne.Window
	trayDate       string
	stopServer     func()
}

// NewGoCalendarApp constructs the application and wires dependencies.
// srv may be nil.
func NewGoCalendarApp(a fyne.App, ctx context.Context, nav *engine.Navigator, srv *server.GridServer) *GoCalendarApp {
	a.SetIcon(fyne.NewStaticResource(config.AppID+".png", appIconData))

	return &GoCalendarApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Navigator:   nav,
		Server:      srv,
	}
}

// Run starts the observers and blocks in the fyne event loop.
func (app *GoCalendarApp) Run() {
	app.SetupI18n()
	app.startServer()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupport,
			config.LogKeyComponent, config.CompUI)
	}

	app.ShowCalendarWindow()

	go app.trayWorker()
	app.App.Run()

	if app.stopServer != nil {
		app.stopServer()
	}
}

// startServer attaches the HTTP observer and serves it in the background.
func (app *GoCalendarApp) startServer() {
	if app.Server == nil {
		return
	}

	app.stopServer = app.Navigator.Attach(app.Server)

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				app.GetMsg(config.TKeyNotifServeErr)))
		}
	}()
}

// setupTrayMenu constructs the system tray menu.
func (app *GoCalendarApp) setupTrayMenu() {
	// The status item shows today's date and jumps there when clicked.
	app.TrayStatusItem = fyne.NewMenuItem(config.AppName, app.showToday)

	app.TrayShowItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuShow), func() {
		app.ShowCalendarWindow()
	})

	app.TrayTodayItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuToday), app.showToday)

	app.TraySettings = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayShowItem,
		app.TrayTodayItem,
		fyne.NewMenuItemSeparator(),
		app.TraySettings,
	)

	app.updateTrayStatus(app.Navigator.Clock.Now())

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// showToday opens the window on the current month.
func (app *GoCalendarApp) showToday() {
	app.Navigator.Today()
	app.ShowCalendarWindow()
}

// trayWorker keeps the tray's date label current across midnight.
// The grid itself is only rebuilt by user interaction.
func (app *GoCalendarApp) trayWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	ticker := time.NewTicker(config.TrayTickInterval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, config.TrayTickInterval)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-ticker.C:
			now := app.Navigator.Clock.Now()
			fyne.Do(func() {
				app.updateTrayStatus(now)
			})
		}
	}
}

// updateTrayStatus refreshes the status item when the date changed.
func (app *GoCalendarApp) updateTrayStatus(now time.Time) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	date := now.Format(config.FormatTrayToday)
	if date == app.trayDate {
		return
	}
	app.trayDate = date

	app.TrayStatusItem.Label = app.GetMsgData(config.TKeyTrayToday, map[string]interface{}{"Date": date})
	app.Menu.Refresh()
}

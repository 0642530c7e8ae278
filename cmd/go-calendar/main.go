package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/mattn/go-isatty"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
	"github.com/tartampluch/go-calendar/internal/render"
	"github.com/tartampluch/go-calendar/internal/server"
	"github.com/tartampluch/go-calendar/internal/ui"
)

// options holds the parsed command line.
type options struct {
	version bool
	debug   bool
	print   bool
	serve   bool
	year    string
	month   string
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var opts options
	flag.BoolVar(&opts.version, config.FlagVersion, false, config.FlagDescVersion)
	flag.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	flag.BoolVar(&opts.print, config.FlagPrint, false, config.FlagDescPrint)
	flag.BoolVar(&opts.serve, config.FlagServe, false, config.FlagDescServe)
	flag.StringVar(&opts.year, config.FlagYear, "", config.FlagDescYear)
	flag.StringVar(&opts.month, config.FlagMonth, "", config.FlagDescMonth)
	flag.Parse()

	if opts.version {
		printVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// The sheet owns stdout in print mode, so console logs move to stderr.
	console := io.Writer(os.Stdout)
	if opts.print {
		console = os.Stderr
	}
	logCloser := setupLogging(console, opts.debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	nav := engine.NewNavigator(engine.RealClock{})

	if err := applyInitialCursor(nav, opts.year, opts.month); err != nil {
		if opts.print {
			slog.Error(config.ErrAppFailed,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err,
			)
			return config.ExitCodeError
		}
		slog.Warn(config.MsgInitialIgnored,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
	}

	if opts.print {
		printSheet(os.Stdout, nav.Grid(), isatty.IsTerminal(os.Stdout.Fd()))
		return config.ExitCodeSuccess
	}

	if err := run(ctx, nav, opts.serve); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context, nav *engine.Navigator, serve bool) error {
	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	var srv *server.GridServer
	if serve || a.Preferences().Bool(config.PrefServeEnabled) {
		port := a.Preferences().StringWithFallback(config.PrefServerPort, config.DefaultPort)
		srv = server.NewGridServer(port)
	}

	gui := ui.NewGoCalendarApp(a, ctx, nav, srv)

	// Lifecycle Bridge:
	// Watch for context cancellation to quit the UI gracefully.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	// Blocks until the last window closes or the tray quits.
	gui.Run()

	return nil
}

// applyInitialCursor moves nav to the month named by the -year and -month
// flags. Either may be empty. On error nav is left unchanged.
func applyInitialCursor(nav *engine.Navigator, year, month string) error {
	if year == "" && month == "" {
		return nil
	}

	c := nav.Cursor()
	var err error

	if year != "" {
		if c, err = c.WithYear(year); err != nil {
			return fmt.Errorf("%s: %w", config.ErrInitialCursor, err)
		}
	}
	if month != "" {
		if c, err = c.WithMonth(month); err != nil {
			return fmt.Errorf("%s: %w", config.ErrInitialCursor, err)
		}
	}

	if _, err = nav.Set(c); err != nil {
		return fmt.Errorf("%s: %w", config.ErrInitialCursor, err)
	}
	return nil
}

// printSheet writes the cal(1) style sheet for g.
func printSheet(w io.Writer, g engine.MonthGrid, styled bool) {
	opts := render.Options{}
	if styled {
		opts = render.Terminal()
	}
	fmt.Fprint(w, render.Sheet(g, opts))
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger to write JSON records to
// console and to a log file in the user's cache directory.
func setupLogging(console io.Writer, debugMode bool) io.Closer {
	writers := []io.Writer{console}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}

package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Calendar"
	AppID             = "com.github.tartampluch.go-calendar"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagPrint        = "print"
	FlagYear         = "year"
	FlagMonth        = "month"
	FlagServe        = "serve"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescPrint    = "Print the month sheet to stdout and exit"
	FlagDescYear     = "Initial year to display (1-9999)"
	FlagDescMonth    = "Initial month to display (1-12 or English month name)"
	FlagDescServe    = "Serve the displayed month over HTTP on localhost"
	MsgVersionOutput = "%s version %s (commit %s, built %s) %s/%s\n"
)

// -----------------------------------------------------------------------------
// Calendar Grid
// -----------------------------------------------------------------------------

const (
	// DaysPerWeek is the number of columns in the grid (Sunday first).
	DaysPerWeek = 7

	// GridRows is the number of week rows a month can occupy.
	GridRows = 6

	// GridCells is the total number of addressable cells.
	GridCells = DaysPerWeek * GridRows

	// NoHighlight marks a grid whose month does not contain today.
	NoHighlight = -1

	// MinYear and MaxYear bound the years accepted from text entry (exclusive).
	MinYear = 0
	MaxYear = 10000

	// MaxYearDigits caps the year entry widget.
	MaxYearDigits = 4
)

// -----------------------------------------------------------------------------
// Navigation Transitions (log values)
// -----------------------------------------------------------------------------

const (
	TransPrevMonth = "prev_month"
	TransNextMonth = "next_month"
	TransPrevYear  = "prev_year"
	TransNextYear  = "next_year"
	TransSetYear   = "set_year"
	TransSetMonth  = "set_month"
	TransToday     = "today"
	TransSet       = "set"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	WindowWidth         = 420
	WindowHeight        = 360
	SettingsWindowWidth = 360
	LayoutColumnsDouble = 2

	// Preference Keys
	PrefServerPort   = "server_port"
	PrefServeEnabled = "serve_enabled"
	PrefLastRun      = "last_run_version"

	// Port bounds for the sharing settings.
	MinPort = 1
	MaxPort = 65535

	// Navigation glyphs
	GlyphPrevYear  = "«"
	GlyphPrevMonth = "‹"
	GlyphNextMonth = "›"
	GlyphNextYear  = "»"

	// FormatWindowTitle expects the month label and the year label.
	FormatWindowTitle = "%s %s"

	// FormatTrayToday is the Go layout for the tray status item.
	FormatTrayToday = "Monday, 2 January 2006"

	TrayTickInterval = time.Minute
)

// SupportedLanguages lists the UI catalogs shipped with the binary (ISO 639-1).
var SupportedLanguages = []string{"en"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyMenuShow      = "menu_show"
	TKeyMenuToday     = "menu_today"
	TKeyTrayToday     = "tray_today" // Requires Date
	TKeyBtnToday      = "btn_today"
	TKeyHintMonth     = "hint_month"
	TKeyHintYear      = "hint_year"
	TKeyWeekdaySun    = "weekday_sun"
	TKeyWeekdayMon    = "weekday_mon"
	TKeyWeekdayTue    = "weekday_tue"
	TKeyWeekdayWed    = "weekday_wed"
	TKeyWeekdayThu    = "weekday_thu"
	TKeyWeekdayFri    = "weekday_fri"
	TKeyWeekdaySat    = "weekday_sat"
	TKeyNotifServeErr = "notif_serve_error"
	TKeyMenuSettings  = "menu_settings"
	TKeyWinSettings   = "win_settings"
	TKeyLblSharing    = "lbl_sharing"
	TKeyLblShare      = "lbl_share"
	TKeyLblPort       = "lbl_port"
	TKeyHelpPort      = "help_port"
	TKeyErrPortReq    = "err_port_req"
	TKeyErrPortNum    = "err_port_num"
	TKeyErrPortRange  = "err_port_range"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblFooter     = "lbl_footer" // Requires Version
)

// WeekdayKeys lists the weekday header keys in grid column order (Sunday first).
var WeekdayKeys = [DaysPerWeek]string{
	TKeyWeekdaySun,
	TKeyWeekdayMon,
	TKeyWeekdayTue,
	TKeyWeekdayWed,
	TKeyWeekdayThu,
	TKeyWeekdayFri,
	TKeyWeekdaySat,
}

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18181"
	DefaultLanguage = "en"
)

// -----------------------------------------------------------------------------
// Terminal Sheet
// -----------------------------------------------------------------------------

const (
	// SheetHeader is the weekday row of the printed sheet (Sunday first).
	SheetHeader = "Su Mo Tu We Th Fr Sa"

	// SheetWidth is the printable width of one sheet row.
	SheetWidth = len(SheetHeader)

	// SheetCellWidth is the width of a day number column.
	SheetCellWidth = 2

	// Lip Gloss ANSI 256 palette entries.
	ColorHeader = "241"
	ColorTitle  = "212"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "1"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
	QueryFormat        = "format"
	FormatJSON         = "json"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextPlain       = "text/plain; charset=utf-8"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidYear    = "invalid year"
	ErrInvalidMonth   = "invalid month"
	ErrMonthRange     = "month out of range"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrEncodeGrid     = "failed to encode month grid"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrTrayNotSupport = "system tray not supported on this platform/driver"
	ErrInitialCursor  = "invalid initial cursor"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	TitleStartupError = "Startup Error"

	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgAppStarting     = "Starting application"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgGridPublished   = "Month grid published"
	MsgGridBuilt       = "Month grid built"
	MsgTransition      = "Cursor transition applied"
	MsgInputRejected   = "Navigation input rejected"
	MsgObserverAdded   = "Observer attached"
	MsgObserverRemoved = "Observer detached"
	MsgWorkerStart     = "Tray worker started"
	MsgWorkerStop      = "Tray worker stopping due to context cancellation"
	MsgWindowOpen      = "Opening calendar window"
	MsgWindowClosed    = "Calendar window closed"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgLocaleMissing   = "Supported language has no catalog"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgInitialIgnored  = "Ignoring invalid initial cursor flag"
	MsgSettingsOpen    = "Opening settings window"
	MsgSettingsFocus   = "Settings window already open, requesting focus"
	MsgSettingsSaved   = "Sharing preferences saved"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent  = "component"
	LogKeyError      = "error"
	LogKeyFile       = "file"
	LogKeyLang       = "lang"
	LogKeyKey        = "key"
	LogKeyPort       = "port"
	LogKeyInterval   = "interval"
	LogKeyTransition = "transition"
	LogKeyYear       = "year"
	LogKeyMonth      = "month"
	LogKeyTodayIndex = "today_index"
	LogKeyObservers  = "observers"
	LogKeySizeBytes  = "size_bytes"
	LogKeyETag       = "etag"
	LogKeyEnabled    = "enabled"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompServer = "server"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
	CompUISet  = "ui_settings"
)

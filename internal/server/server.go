package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
	"github.com/tartampluch/go-calendar/internal/render"
)

// gridDocument is the JSON view of the displayed month.
type gridDocument struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	YearLabel    string `json:"year_label"`
	MonthLabel   string `json:"month_label"`
	StartWeekday int    `json:"start_weekday"`
	Days         int    `json:"days"`
	Cells        []int  `json:"cells"`
	TodayIndex   int    `json:"today_index"`
}

// variant is one representation of the grid with its own ETag.
type variant struct {
	body []byte
	mime string
	etag string
}

func newVariant(body []byte, mime string) variant {
	hash := sha256.Sum256(body)
	return variant{
		body: body,
		mime: mime,
		etag: fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
	}
}

// snapshot stores both renderings of one grid and their HTTP caching metadata.
type snapshot struct {
	text         variant
	json         variant
	lastModified string // RFC1123 format required by HTTP headers
}

// GridServer serves the month currently shown by the navigator on localhost.
// It implements engine.Observer.
type GridServer struct {
	// current is written from the UI goroutine and read by request goroutines.
	current atomic.Pointer[snapshot]
	Port    string

	// ready receives the bound address once the listener is up.
	ready chan string
}

// NewGridServer creates a new instance of the server.
func NewGridServer(port string) *GridServer {
	return &GridServer{
		Port:  port,
		ready: make(chan string, config.ChannelBufferSize),
	}
}

// Ready is signalled with the listening address after Start binds.
func (s *GridServer) Ready() <-chan string {
	return s.ready
}

// Start binds the listener and serves until ctx is cancelled.
func (s *GridServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleGridRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}

	slog.Info(config.MsgServerListen,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyPort, ln.Addr().String(),
	)
	select {
	case s.ready <- ln.Addr().String():
	default:
	}

	serverError := make(chan error, config.ChannelBufferSize)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Render publishes a new grid. Concurrent readers see either the previous or
// the new snapshot, never a mix.
func (s *GridServer) Render(grid engine.MonthGrid) {
	text := []byte(render.Sheet(grid, render.Options{}))

	doc := gridDocument{
		Year:         grid.Year,
		Month:        int(grid.Month),
		YearLabel:    grid.YearLabel,
		MonthLabel:   grid.MonthLabel,
		StartWeekday: grid.StartWeekday,
		Days:         grid.Days,
		Cells:        grid.Cells[:],
		TodayIndex:   grid.TodayIndex,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		slog.Error(config.ErrEncodeGrid,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		return
	}

	item := &snapshot{
		text:         newVariant(text, config.MimeTextPlain),
		json:         newVariant(body, config.MimeJSON),
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}
	s.current.Store(item)

	slog.Debug(config.MsgGridPublished,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyYear, grid.Year,
		config.LogKeyMonth, int(grid.Month),
		config.LogKeySizeBytes, len(text)+len(body),
		config.LogKeyETag, item.text.etag,
	)
}

// handleGridRequest serves the sheet (or JSON) with HTTP caching support.
func (s *GridServer) handleGridRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.current.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	v := item.text
	if r.URL.Query().Get(config.QueryFormat) == config.FormatJSON {
		v = item.json
	}

	w.Header().Set(config.HeaderContentType, v.mime)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, v.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	// If-None-Match takes precedence: Last-Modified has one second resolution
	// and the month can change several times within it.
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		if match == v.etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := w.Write(v.body); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// File: internal/wizardui/server.go
// Brief: HTTP server hosting the scaffolding wizard.

// Package wizardui serves the project-scaffolding wizard over HTTP. The
// server is stateless with respect to wizard sessions: the entire wizard
// state travels in the URL query string, so every handler decodes the model
// from the request, acts on it, and emits links that re-encode the mutated
// model. Refreshing, bookmarking, or sharing a URL reconstructs the session
// exactly, and browser back/forward replays the transitions.
package wizardui

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/example/kickstart/internal/compose"
	"github.com/example/kickstart/internal/featureflags"
	"github.com/example/kickstart/internal/selection"
	"github.com/example/kickstart/internal/urlstate"
)

// Config carries everything the wizard server needs at construction time.
type Config struct {
	// ListenAddr is the TCP address to serve on (e.g. ":8080").
	ListenAddr string
	// HistoryDB is the path of the SQLite download-history database. Empty
	// disables history.
	HistoryDB string
	// Stamp is the frozen modification time applied to every archive entry.
	// The zero value means "server start time", read once so that identical
	// selections keep producing byte-identical archives for the lifetime of
	// the process.
	Stamp time.Time
	// Flags is the resolved feature-flag set for this process.
	Flags featureflags.Flags
	// Logger defaults to zap.NewNop when nil.
	Logger *zap.Logger
}

// Server hosts the wizard UI, the JSON API, the live-preview WebSocket, and
// the archive download endpoint.
type Server struct {
	cfg      Config
	logger   *zap.Logger
	stamp    time.Time
	opts     compose.Options
	tmpl     *template.Template
	upgrader websocket.Upgrader

	httpServer *http.Server
	store      *historyStore
}

// New validates the config and builds a server. The history store is opened
// eagerly so a bad path fails at startup rather than on the first download.
func New(cfg Config) (*Server, error) {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return nil, fmt.Errorf("listen address is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	stamp := cfg.Stamp
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}
	tmpl, err := template.New("wizard").Parse(wizardHTML)
	if err != nil {
		return nil, fmt.Errorf("parse wizard template: %w", err)
	}

	var store *historyStore
	if strings.TrimSpace(cfg.HistoryDB) != "" {
		store, err = openHistoryStore(cfg.HistoryDB)
		if err != nil {
			return nil, err
		}
	}

	mux := http.NewServeMux()
	s := &Server{
		cfg:    cfg,
		logger: logger,
		stamp:  stamp,
		opts: compose.Options{
			FormatTableV2: cfg.Flags.Enabled(featureflags.FeatureFormatTableV2),
		},
		tmpl:  tmpl,
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	s.routes(mux)
	s.httpServer.Handler = s.logRequests(mux)
	return s, nil
}

// Run serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	s.logger.Info("wizard ui listening", zap.String("addr", ln.Addr().String()))
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and closes the history store.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// decodeModel rebuilds the wizard model for a request. Malformed parameters
// degrade per field to the defaults, silently; a mangled link still lands
// the user on a usable page.
func (s *Server) decodeModel(r *http.Request) selection.Model {
	return urlstate.Decode(r.URL.Query(), selection.New())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/pietrodev07/RoadPlan/internal/platform/branding"
	"github.com/pietrodev07/RoadPlan/internal/platform/timeouts"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/cachepolicy"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/httpx"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/observability"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/prefs"
	"github.com/pietrodev07/RoadPlan/internal/web/static"
)

// Config defines the inputs for the web shell server.
type Config struct {
	HTTPAddr string
	AppName  string
	// LoadingBarEnabled gates the shell loading indicator. Read once from
	// process configuration; immutable for the process lifetime.
	LoadingBarEnabled bool
	Logger            *log.Logger
}

// Server hosts the shell HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer assembles the route table and middleware chain.
func NewServer(config Config) (*Server, error) {
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   config.HTTPAddr,
		httpServer: httpServer,
	}, nil
}

// NewHandler creates the root HTTP handler for the shell service.
//
// This is the test-oriented entrypoint: it wires routes and middleware
// without binding a listener.
func NewHandler(config Config) (http.Handler, error) {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := &handler{
		appName:           appName,
		loadingBarEnabled: config.LoadingBarEnabled,
		registry:          prefs.NewRegistry(),
	}

	staticFS, err := fs.Sub(static.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	pageMux := http.NewServeMux()
	pageMux.HandleFunc("/", h.handleHome)
	pageMux.HandleFunc("/about", h.handleAbout)
	// The cache policy handler is the only place caching semantics are
	// decided; it runs before any rendering work.
	pages := httpx.Chain(pageMux, cachepolicy.Middleware(cachepolicy.Default()))

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.HandleFunc("/healthz", h.handleHealthz)
	mux.Handle("/theme", httpx.Chain(
		http.HandlerFunc(h.handleThemeUpdate),
		httpx.RequireMethod(http.MethodPost),
	))
	mux.Handle("/", pages)

	root := httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.Tracing(),
		observability.RequestLogger(logger),
	)
	return root, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web shell listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Package app bootstraps the web application: it mounts the route table and
// the view dispatch table behind one HTTP handler and serves it.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"pp-viewer/model"
	"pp-viewer/router"
	"pp-viewer/template"
	"pp-viewer/views"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

var ErrAlreadyMounted = errors.New("app: already mounted")

const shutdownTimeout = 10 * time.Second

type Config struct {
	Addr           string
	CSRFCookieName string
}

type App struct {
	cfg     Config
	catalog model.Catalog
	views   *views.Views
	logger  *zap.Logger
	mounted atomic.Bool
}

func New(cfg Config, catalog model.Catalog, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CSRFCookieName == "" {
		cfg.CSRFCookieName = "csrftoken"
	}
	return &App{
		cfg:     cfg,
		catalog: catalog,
		views:   views.New(catalog, logger),
		logger:  logger,
	}
}

// Mount builds the application handler. It may be called once.
func (a *App) Mount() (http.Handler, error) {
	if !a.mounted.CompareAndSwap(false, true) {
		return nil, ErrAlreadyMounted
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /static/style.css", a.handleStylesheet)
	mux.HandleFunc("/", a.handleRoute)
	for _, r := range router.Table() {
		a.logger.Debug("route mounted",
			zap.String("pattern", r.Pattern),
			zap.String("name", r.Name),
			zap.Stringer("view", r.View))
	}
	return a.withRequestContext(mux), nil
}

// Run listens on the configured address and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.Addr, err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	handler, err := a.Mount()
	if err != nil {
		ln.Close()
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	a.logger.Info("serving", zap.String("addr", ln.Addr().String()))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		a.logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	}
}

func (a *App) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(template.StyleCSS))
}

func (a *App) handleRoute(w http.ResponseWriter, r *http.Request) {
	match, ok := router.Match(r.URL.EscapedPath())
	if !ok {
		a.writePage(w, r, views.NotFound(r.URL.Path))
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		page := a.views.Render(r.Context(), match.Route.View, views.Request{
			Path:      r.URL.Path,
			Params:    match.Params,
			Query:     r.URL.Query(),
			CSRFToken: a.csrfCookie(r),
		})
		a.writePage(w, r, page)
	case http.MethodPost:
		if match.Route.View == router.ViewBookDetail {
			a.handleStar(w, r, match.Params.Get("id"))
			return
		}
		methodNotAllowed(w)
	default:
		methodNotAllowed(w)
	}
}

func (a *App) writePage(w http.ResponseWriter, r *http.Request, page views.Page) {
	templ.Handler(views.Layout(page), templ.WithStatus(page.Status)).ServeHTTP(w, r)
}

func (a *App) csrfCookie(r *http.Request) string {
	c, err := r.Cookie(a.cfg.CSRFCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

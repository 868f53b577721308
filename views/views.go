// Package views renders the application's pages. Each route view maps to one
// Handler in a fixed dispatch table.
package views

import (
	"context"
	"net/http"
	"net/url"
	"pp-viewer/api"
	"pp-viewer/model"
	"pp-viewer/router"
	"strconv"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// Request carries what a view may read from the incoming request.
type Request struct {
	Path   string
	Params router.Params
	Query  url.Values
	// CSRFToken is echoed into forms that post back to the app.
	CSRFToken string
}

// page returns the 1-based page number requested via ?page=, or 0 when absent.
func (r Request) page() int {
	n, err := strconv.Atoi(r.Query.Get("page"))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

type Page struct {
	Title  string
	Status int
	Body   templ.Component
}

type Handler func(ctx context.Context, catalog model.Catalog, req Request) (Page, error)

// Dispatch returns the view table. Every router.View has exactly one entry.
func Dispatch() map[router.View]Handler {
	return map[router.View]Handler{
		router.ViewHome:          Home,
		router.ViewBookList:      BookList,
		router.ViewBookDetail:    BookDetail,
		router.ViewPageDetail:    PageDetail,
		router.ViewCharacterList: CharacterList,
	}
}

type Views struct {
	catalog  model.Catalog
	logger   *zap.Logger
	handlers map[router.View]Handler
}

func New(catalog model.Catalog, logger *zap.Logger) *Views {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Views{
		catalog:  catalog,
		logger:   logger,
		handlers: Dispatch(),
	}
}

// Render runs the handler for view. API failures become a not-found page
// when the API answered 404 and a bad-gateway page otherwise.
func (v *Views) Render(ctx context.Context, view router.View, req Request) Page {
	handler, ok := v.handlers[view]
	if !ok {
		v.logger.Error("no handler for view", zap.Stringer("view", view))
		return ErrorPage(http.StatusInternalServerError)
	}
	page, err := handler(ctx, v.catalog, req)
	if err != nil {
		v.logger.Warn("failed to render view",
			zap.Stringer("view", view),
			zap.String("path", req.Path),
			zap.String("request_id", api.RequestIDFrom(ctx)),
			zap.Error(err))
		if api.IsNotFound(err) {
			return NotFound(req.Path)
		}
		return ErrorPage(http.StatusBadGateway)
	}
	if page.Status == 0 {
		page.Status = http.StatusOK
	}
	return page
}

package app

import (
	"crypto/subtle"
	"net/http"
	"pp-viewer/api"
	"pp-viewer/router"
	"pp-viewer/views"
	"strconv"

	"go.uber.org/zap"
)

// handleStar toggles a book's star. The form must echo the csrftoken cookie
// (double submit); the API call then carries the same token in its header.
func (a *App) handleStar(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	cookie := a.csrfCookie(r)
	submitted := r.PostFormValue("csrftoken")
	if cookie == "" || subtle.ConstantTimeCompare([]byte(cookie), []byte(submitted)) != 1 {
		a.logger.Warn("csrf token mismatch",
			zap.String("path", r.URL.Path),
			zap.String("request_id", api.RequestIDFrom(r.Context())))
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	starred, err := strconv.ParseBool(r.PostFormValue("starred"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, err := a.catalog.SetBookStarred(r.Context(), id, starred); err != nil {
		a.logger.Warn("failed to star book",
			zap.String("book", id),
			zap.Bool("starred", starred),
			zap.String("request_id", api.RequestIDFrom(r.Context())),
			zap.Error(err))
		if api.IsNotFound(err) {
			a.writePage(w, r, views.NotFound(r.URL.Path))
			return
		}
		a.writePage(w, r, views.ErrorPage(http.StatusBadGateway))
		return
	}
	http.Redirect(w, r, router.MustResolve(router.BookDetailView, router.Params{"id": id}), http.StatusSeeOther)
}

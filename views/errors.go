package views

import (
	"context"
	"net/http"
	"pp-viewer/router"
)

func NotFound(path string) Page {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", "Not found")
		h.raw(`<p>Nothing lives at <code>`)
		h.text(path)
		h.raw(`</code>. `)
		h.link(router.MustResolve(router.HomeView, nil), "Back home")
		h.raw(`</p>`)
	})
	return Page{Title: "Not found", Status: http.StatusNotFound, Body: body}
}

func ErrorPage(status int) Page {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", http.StatusText(status))
		if status == http.StatusBadGateway {
			h.element("p", "", "The catalog API could not be reached or returned an error.")
		}
	})
	return Page{Title: http.StatusText(status), Status: status, Body: body}
}

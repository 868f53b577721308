package views

import (
	"context"
	"pp-viewer/router"

	"github.com/a-h/templ"
)

const (
	AppName       = "Printing & Publishing"
	StylesheetURL = "/static/style.css"
)

var navigation = []struct {
	route string
	label string
}{
	{router.HomeView, "Home"},
	{router.BookListView, "Books"},
	{router.CharacterListView, "Characters"},
}

// Layout wraps page into the application shell mounted at #app.
func Layout(page Page) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title := AppName
		if page.Title != "" {
			title = page.Title + " | " + AppName
		}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", "", title)
		h.raw(`<link rel="stylesheet" href="` + StylesheetURL + `">`)
		h.raw(`</head><body><div id="app"><nav class="navbar">`)
		h.element("span", "brand", AppName)
		for _, item := range navigation {
			h.link(router.MustResolve(item.route, nil), item.label)
		}
		h.raw(`</nav><main>`)
		h.render(ctx, page.Body)
		h.raw(`</main></div></body></html>`)
	})
}

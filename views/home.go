package views

import (
	"context"
	"pp-viewer/model"
	"pp-viewer/router"
)

func Home(_ context.Context, _ model.Catalog, _ Request) (Page, error) {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", AppName)
		h.element("p", "lead", "Browse digitized books, their segmented pages and the characters extracted from them.")
		h.raw(`<ul class="home-links"><li>`)
		h.link(router.MustResolve(router.BookListView, nil), "Books")
		h.raw(`</li><li>`)
		h.link(router.MustResolve(router.CharacterListView, nil), "Characters")
		h.raw(`</li></ul>`)
	})
	return Page{Body: body}, nil
}

package views

import (
	"context"
	"fmt"
	"pp-viewer/model"
	"pp-viewer/router"
	"strconv"

	"github.com/a-h/templ"
)

func BookList(ctx context.Context, catalog model.Catalog, req Request) (Page, error) {
	books, err := catalog.ListBooks(ctx, req.page())
	if err != nil {
		return Page{}, err
	}
	path := router.MustResolve(router.BookListView, nil)
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", "Books")
		h.element("p", "count", fmt.Sprintf("%s books", count(books.Count)))
		h.raw(`<table class="table books">`)
		h.header("", "Title", "Author", "Publisher", "ESTC", "VID", "Spreads")
		h.raw(`<tbody>`)
		for _, b := range books.Results {
			h.raw(`<tr><td>`)
			if b.Starred {
				h.element("span", "star", "★")
			}
			h.raw(`</td><td>`)
			h.routeLink(router.BookDetailView, router.Params{"id": b.Id}, b.Title())
			h.raw(`</td>`)
			h.cell(b.PQAuthor)
			h.cell(b.Publisher())
			h.cell(b.Estc)
			h.cell(optInt(b.Vid))
			h.cell(count(b.NSpreads))
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		h.pager(path, req.page(), books.HasPrevious(), books.HasNext())
	})
	return Page{Title: "Books", Body: body}, nil
}

func BookDetail(ctx context.Context, catalog model.Catalog, req Request) (Page, error) {
	id := req.Params.Get("id")
	book, err := catalog.GetBook(ctx, id)
	if err != nil {
		return Page{}, err
	}
	self := router.MustResolve(router.BookDetailView, router.Params{"id": id})
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", book.Title())
		if book.CoverSpread != nil {
			h.raw(`<figure class="cover">`)
			h.image(book.CoverSpread.Image.Thumbnail, book.CoverSpread.Label)
			h.raw(`</figure>`)
		}
		starForm(h, self, book.Starred, req.CSRFToken)

		h.raw(`<dl class="book-meta">`)
		h.field("Author", book.PQAuthor)
		h.field("Publisher", book.Publisher())
		h.field("Printer", book.PPPrinter)
		h.field("Commonly attributed printer", book.ColloqPrinter)
		h.field("Date", book.PQYearVerbatim)
		h.field("Date range", dateRange(book.DateEarly, book.DateLate))
		h.field("ESTC", book.Estc)
		h.field("VID", optInt(book.Vid))
		h.field("EEBO", optInt(book.Eebo))
		h.field("TCP", book.Tcp)
		h.field("Repository", book.Repository)
		h.field("PDF", book.PDF)
		h.field("Spreads", count(len(book.Spreads)))
		h.field("Notes", book.PPNotes)
		h.raw(`</dl>`)
		if book.PQURL != "" {
			h.raw(`<p>`)
			h.link(book.PQURL, "ProQuest record")
			h.raw(`</p>`)
		}

		h.element("h2", "", "Runs")
		h.raw(`<table class="table runs">`)
		h.header("Kind", "Run", "Started", "Components")
		h.raw(`<tbody>`)
		runRows(h, "Pages", book.AllRuns.Pages)
		runRows(h, "Lines", book.AllRuns.Lines)
		runRows(h, "Characters", book.AllRuns.Characters)
		h.raw(`</tbody></table>`)
	})
	return Page{Title: book.Title(), Body: body}, nil
}

// starForm posts back to the book's own path; the app turns it into an API
// PATCH carrying the CSRF header.
func starForm(h *htmlWriter, action string, starred bool, token string) {
	label := "Star"
	if starred {
		label = "Unstar"
	}
	h.raw(`<form method="post" class="star-form" action="` + templ.EscapeString(action) + `">`)
	h.raw(`<input type="hidden" name="csrftoken" value="`)
	h.text(token)
	h.raw(`">`)
	h.raw(`<input type="hidden" name="starred" value="` + strconv.FormatBool(!starred) + `">`)
	h.raw(`<button type="submit">`)
	h.text(label)
	h.raw(`</button></form>`)
}

func runRows(h *htmlWriter, kind string, runs []model.Run) {
	for _, r := range runs {
		h.raw(`<tr>`)
		h.cell(kind)
		h.cell(r.Label)
		h.cell(r.DateStarted)
		h.cell(count(r.ComponentCount))
		h.raw(`</tr>`)
	}
}

func dateRange(early, late string) string {
	if early == "" && late == "" {
		return ""
	}
	return early + " – " + late
}

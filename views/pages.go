package views

import (
	"context"
	"fmt"
	"pp-viewer/model"
)

func PageDetail(ctx context.Context, catalog model.Catalog, req Request) (Page, error) {
	page, err := catalog.GetPage(ctx, req.Params.Get("id"))
	if err != nil {
		return Page{}, err
	}
	title := page.Label
	if title == "" {
		title = fmt.Sprintf("Page %d", page.Sequence)
	}
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", title)
		h.raw(`<dl class="page-meta">`)
		h.field("Book", page.BookTitle)
		h.field("Side", page.SideName())
		h.field("Sequence", count(page.Sequence))
		h.field("Created by run", page.CreatedByRun.String())
		h.field("Spread", page.Spread.String())
		h.field("Crop", crop(page))
		h.raw(`</dl>`)
		if page.Image.WebURL != "" {
			h.raw(`<figure class="page-image">`)
			h.image(page.Image.WebURL, title)
			h.raw(`</figure>`)
		}

		h.element("h2", "", fmt.Sprintf("Lines (%s)", count(len(page.Lines))))
		h.raw(`<table class="table lines">`)
		h.header("#", "Top", "Bottom", "Height", "Image")
		h.raw(`<tbody>`)
		for _, l := range page.Lines {
			h.raw(`<tr>`)
			h.cell(count(l.Sequence))
			h.cell(count(l.YMin))
			h.cell(count(l.YMax))
			h.cell(count(l.Height()))
			h.raw(`<td>`)
			h.image(l.Image.Thumbnail, l.Label)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	})
	return Page{Title: title, Body: body}, nil
}

func crop(p *model.Page) string {
	if p.X == nil || p.Y == nil || p.W == nil || p.H == nil {
		return ""
	}
	return fmt.Sprintf("x %s, y %s, %s × %s", optFloat(p.X), optFloat(p.Y), optFloat(p.W), optFloat(p.H))
}

package views

import (
	"context"
	"fmt"
	"pp-viewer/model"
	"pp-viewer/router"
)

func CharacterList(ctx context.Context, catalog model.Catalog, req Request) (Page, error) {
	chars, err := catalog.ListCharacters(ctx, req.page())
	if err != nil {
		return Page{}, err
	}
	path := router.MustResolve(router.CharacterListView, nil)
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.element("h1", "", "Characters")
		h.element("p", "count", fmt.Sprintf("%s characters", count(chars.Count)))
		h.raw(`<table class="table characters">`)
		h.header("Image", "Character", "Class", "Probability", "#", "X range")
		h.raw(`<tbody>`)
		for _, c := range chars.Results {
			h.raw(`<tr><td>`)
			h.image(c.Image.Thumbnail, c.Label)
			h.raw(`</td>`)
			h.cell(c.Label)
			h.cell(c.Class())
			h.cell(percent(c.ClassProbability))
			h.cell(count(c.Sequence))
			h.cell(fmt.Sprintf("%d–%d", c.XMin, c.XMax))
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		h.pager(path, req.page(), chars.HasPrevious(), chars.HasNext())
	})
	return Page{Title: "Characters", Body: body}, nil
}

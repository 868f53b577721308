package views

import (
	"strconv"
)

// pager links the previous and next pages of a list view. The API decides
// whether more pages exist; the view only follows its next/previous hints.
func (h *htmlWriter) pager(path string, current int, hasPrevious, hasNext bool) {
	if !hasPrevious && !hasNext {
		return
	}
	if current < 1 {
		current = 1
	}
	h.raw(`<nav class="pager">`)
	if hasPrevious {
		prev := path
		if current-1 > 1 {
			prev += "?page=" + strconv.Itoa(current-1)
		}
		h.link(prev, "Previous")
	}
	if hasNext {
		h.link(path+"?page="+strconv.Itoa(current+1), "Next")
	}
	h.raw(`</nav>`)
}

package views

import (
	"context"
	"io"
	"pp-viewer/router"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// htmlWriter keeps the first write error so render code can stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) textf(format string, args ...any) {
	h.text(printer.Sprintf(format, args...))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func (h *htmlWriter) element(tag, class, body string) {
	if class != "" {
		h.raw("<" + tag + ` class="` + templ.EscapeString(class) + `">`)
	} else {
		h.raw("<" + tag + ">")
	}
	h.text(body)
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) link(href, label string) {
	h.raw(`<a href="` + templ.EscapeString(string(templ.URL(href))) + `">`)
	h.text(label)
	h.raw("</a>")
}

// routeLink links to a named route, or writes the bare label when the route
// cannot be built (a record without an id).
func (h *htmlWriter) routeLink(name string, params router.Params, label string) {
	href, err := router.Resolve(name, params)
	if err != nil {
		h.text(label)
		return
	}
	h.link(href, label)
}

func (h *htmlWriter) image(src, alt string) {
	if src == "" {
		return
	}
	h.raw(`<img src="` + templ.EscapeString(string(templ.URL(src))) + `" alt="` + templ.EscapeString(alt) + `" loading="lazy">`)
}

// field writes one <dt>/<dd> pair, skipping empty values.
func (h *htmlWriter) field(label, value string) {
	if value == "" {
		return
	}
	h.element("dt", "", label)
	h.element("dd", "", value)
}

func (h *htmlWriter) cell(value string) {
	h.element("td", "", value)
}

func (h *htmlWriter) header(labels ...string) {
	h.raw("<thead><tr>")
	for _, l := range labels {
		h.element("th", "", l)
	}
	h.raw("</tr></thead>")
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return printer.Sprintf("%.1f", *v)
}

func percent(p float64) string {
	return printer.Sprintf("%.1f%%", p*100)
}

func count(n int) string {
	return printer.Sprintf("%d", n)
}

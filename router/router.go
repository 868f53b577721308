// Package router holds the static route table and resolves request paths
// against it.
package router

import (
	"fmt"
	"net/url"
	"strings"
)

// View identifies which render callback a route dispatches to.
type View int

const (
	ViewHome View = iota + 1
	ViewBookList
	ViewBookDetail
	ViewPageDetail
	ViewCharacterList
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewBookList:
		return "book-list"
	case ViewBookDetail:
		return "book-detail"
	case ViewPageDetail:
		return "page-detail"
	case ViewCharacterList:
		return "character-list"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Route names, usable with Resolve.
const (
	HomeView          = "HomeView"
	BookListView      = "BookListView"
	BookDetailView    = "BookDetailView"
	PageDetailView    = "PageDetailView"
	CharacterListView = "CharacterListView"
)

type Route struct {
	Pattern string
	Name    string
	View    View
}

var table = [...]Route{
	{Pattern: "/", Name: HomeView, View: ViewHome},
	{Pattern: "/books", Name: BookListView, View: ViewBookList},
	{Pattern: "/books/:id", Name: BookDetailView, View: ViewBookDetail},
	{Pattern: "/pages/:id", Name: PageDetailView, View: ViewPageDetail},
	{Pattern: "/characters/", Name: CharacterListView, View: ViewCharacterList},
}

// Table returns a copy of the route table in match order.
func Table() []Route {
	routes := make([]Route, len(table))
	copy(routes, table[:])
	return routes
}

// Params are the values bound to a route's ":name" segments.
type Params map[string]string

func (p Params) Get(name string) string {
	return p[name]
}

type Matched struct {
	Route  Route
	Params Params
}

// Match resolves path to the first route in the table that accepts it. A
// trailing slash is optional and literal segments compare case-insensitively.
func Match(path string) (Matched, bool) {
	segments, ok := splitPath(path)
	if !ok {
		return Matched{}, false
	}
	for _, route := range table {
		if params, ok := matchRoute(route.Pattern, segments); ok {
			return Matched{Route: route, Params: params}, true
		}
	}
	return Matched{}, false
}

// Lookup returns the route registered under name.
func Lookup(name string) (Route, bool) {
	for _, route := range table {
		if route.Name == name {
			return route, true
		}
	}
	return Route{}, false
}

// Resolve builds the path of the named route, escaping each parameter.
func Resolve(name string, params Params) (string, error) {
	route, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}
	parts := strings.Split(route.Pattern, "/")
	for i, part := range parts {
		if !strings.HasPrefix(part, ":") {
			continue
		}
		value := params[part[1:]]
		if value == "" {
			return "", fmt.Errorf("route %s: missing param %q", name, part[1:])
		}
		parts[i] = url.PathEscape(value)
	}
	return strings.Join(parts, "/"), nil
}

// MustResolve is Resolve for names and params known to be valid.
func MustResolve(name string, params Params) string {
	path, err := Resolve(name, params)
	if err != nil {
		panic(err)
	}
	return path
}

func matchRoute(pattern string, segments []string) (Params, bool) {
	want, _ := splitPath(pattern)
	if len(want) != len(segments) {
		return nil, false
	}
	var params Params
	for i, part := range want {
		if strings.HasPrefix(part, ":") {
			value, err := url.PathUnescape(segments[i])
			if err != nil || value == "" {
				return nil, false
			}
			if params == nil {
				params = Params{}
			}
			params[part[1:]] = value
			continue
		}
		if !strings.EqualFold(part, segments[i]) {
			return nil, false
		}
	}
	return params, true
}

// splitPath returns the non-empty segments of an absolute path, ignoring a
// single trailing slash. Empty interior segments ("//") never match.
func splitPath(path string) ([]string, bool) {
	if !strings.HasPrefix(path, "/") || strings.Contains(path, "//") {
		return nil, false
	}
	path = strings.TrimSuffix(path[1:], "/")
	if path == "" {
		return nil, true
	}
	return strings.Split(path, "/"), true
}

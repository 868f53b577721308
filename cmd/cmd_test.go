package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"count": 1, "results": [{"id": "42", "pq_title": "ipsum", "pq_author": "Anon"}]}`)
	})
	mux.HandleFunc("GET /books/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "42" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"id": "42", "pq_title": "ipsum"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rArgs = rootArgs{}
	rndArgs = renderArgs{}
	eArgs = exportArgs{outputPath: "./snapshot"}
	pArgs = packArgs{}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestRoutes(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "/books/:id")
	assert.Contains(t, out, "BookDetailView")
	assert.Contains(t, out, "character-list")
}

func TestRoutesMatch(t *testing.T) {
	out, err := execute(t, "routes", "match", "/books/42")
	require.NoError(t, err)
	assert.Equal(t, "BookDetailView /books/:id (book-detail)\n  id=42\n", out)

	_, err = execute(t, "routes", "match", "/nonexistent")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	srv := fakeAPI(t)

	out, err := execute(t, "render", "/books", "--text", "--api-base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Books\n")
	assert.Contains(t, out, "ipsum")
	assert.NotContains(t, out, "<table")

	out, err = execute(t, "render", "/books/42", "--api-base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="app">`)

	_, err = execute(t, "render", "/books/7", "--api-base-url", srv.URL)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	srv := fakeAPI(t)
	dir := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, "export", "/", "/books/42", "-o", dir, "--api-base-url", srv.URL)
	require.NoError(t, err)

	for _, name := range []string{"index.html", "books_42.html", filepath.Join("static", "style.css")} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	f, err := os.Open(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	css, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "static/style.css", css)
	// exported pages link to each other by file name, the rest stay absolute
	assert.Equal(t, 1, doc.Find(`nav a[href="index.html"]`).Length())
	assert.Equal(t, 1, doc.Find(`nav a[href="/books"]`).Length())
}

func TestPack(t *testing.T) {
	_, err := execute(t, "pack")
	assert.EqualError(t, err, "dir path is required")

	dir := filepath.Join(t.TempDir(), "snapshot")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0644))
	_, err = execute(t, "pack", "-d", dir)
	require.NoError(t, err)
	_, err = os.Stat(dir + ".zip")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

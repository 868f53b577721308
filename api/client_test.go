package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/publicsuffix"
)

type recorded struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (r *recorded) add(req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	r.bodies = append(r.bodies, string(body))
}

func (r *recorded) last() (*http.Request, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.requests)
	return r.requests[n-1], r.bodies[n-1]
}

func fakeAPI(t *testing.T) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/", func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"count": 1, "next": null, "previous": null, "results": [{"id": "b1", "pq_title": "ipsum"}]}`)
	})
	mux.HandleFunc("GET /books/{id}/", func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		if r.PathValue("id") != "b1" {
			http.Error(w, `{"detail": "Not found."}`, http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"id": "b1", "pq_title": "ipsum", "spreads": ["s1", "s2"], "all_runs": {"pages": [{"id": "r1", "date_started": "2019-07-15"}]}}`)
	})
	mux.HandleFunc("PATCH /books/{id}/", func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		_, _ = io.WriteString(w, `{"id": "b1", "starred": true}`)
	})
	mux.HandleFunc("GET /pages/{id}/", func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		_, _ = io.WriteString(w, `{"id": "p1", "side": "r", "lines": [{"id": "l1", "y_min": 10, "y_max": 40}]}`)
	})
	mux.HandleFunc("GET /characters/", func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		_, _ = io.WriteString(w, `[{"id": "c1", "character_class": "a", "class_probability": 0.5}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, rec
}

func newJar(t *testing.T, rawURL string, cookies ...*http.Cookie) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	require.NoError(t, err)
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	jar.SetCookies(u, cookies)
	return jar
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost", c.BaseURL())
	assert.True(t, c.WithCredentials())
	assert.Equal(t, "csrftoken", c.CSRFCookieName())
	assert.Equal(t, "X-CSRFToken", c.CSRFHeaderName())
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "localhost/api"})
	assert.Error(t, err)
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, 100, PageSize)
}

func TestClient_ListBooksSendsPageSize(t *testing.T) {
	srv, rec := fakeAPI(t)
	c, err := New(Config{BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	assert.Equal(t, srv.URL, c.BaseURL())

	list, err := c.ListBooks(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "ipsum", list.Results[0].Title())

	req, _ := rec.last()
	assert.Equal(t, "100", req.URL.Query().Get("page_size"))
	assert.Equal(t, "2", req.URL.Query().Get("page"))
}

func TestClient_GetBookAndPage(t *testing.T) {
	srv, _ := fakeAPI(t)
	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	book, err := c.GetBook(context.Background(), "b1")
	require.NoError(t, err)
	assert.Len(t, book.Spreads, 2)
	require.Len(t, book.AllRuns.Pages, 1)
	assert.Equal(t, "2019-07-15", book.AllRuns.Pages[0].DateStarted)

	page, err := c.GetPage(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "right", page.SideName())
	require.Len(t, page.Lines, 1)
	assert.Equal(t, 30, page.Lines[0].Height())

	chars, err := c.ListCharacters(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, chars.Count)
}

func TestClient_NotFound(t *testing.T) {
	srv, _ := fakeAPI(t)
	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.GetBook(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestClient_SendsJarCookiesOnEveryRequest(t *testing.T) {
	srv, rec := fakeAPI(t)
	jar := newJar(t, srv.URL, &http.Cookie{Name: "sessionid", Value: "s3cr3t"})
	c, err := New(Config{BaseURL: srv.URL}, WithCookieJar(jar))
	require.NoError(t, err)

	_, err = c.ListBooks(context.Background(), 0)
	require.NoError(t, err)

	req, _ := rec.last()
	cookie, err := req.Cookie("sessionid")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cookie.Value)
}

func TestClient_CSRFHeaderFromJar(t *testing.T) {
	srv, rec := fakeAPI(t)
	jar := newJar(t, srv.URL, &http.Cookie{Name: "csrftoken", Value: "tok-123"})
	c, err := New(Config{BaseURL: srv.URL}, WithCookieJar(jar))
	require.NoError(t, err)

	_, err = c.ListBooks(context.Background(), 0)
	require.NoError(t, err)
	req, _ := rec.last()
	assert.Empty(t, req.Header.Get("X-CSRFToken"), "safe methods carry no token")

	book, err := c.SetBookStarred(context.Background(), "b1", true)
	require.NoError(t, err)
	assert.True(t, book.Starred)

	req, body := rec.last()
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "tok-123", req.Header.Get("X-CSRFToken"))
	var payload map[string]bool
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, map[string]bool{"starred": true}, payload)
}

func TestClient_CSRFHeaderOmittedWithoutCookie(t *testing.T) {
	srv, rec := fakeAPI(t)
	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.SetBookStarred(context.Background(), "b1", false)
	require.NoError(t, err)

	req, _ := rec.last()
	_, present := req.Header["X-Csrftoken"]
	assert.False(t, present)
}

func TestClient_ForwardedCookiesAndRequestID(t *testing.T) {
	srv, rec := fakeAPI(t)
	c, err := New(Config{BaseURL: srv.URL, CSRFHeaderName: "X-Custom-CSRF", CSRFCookieName: "token"})
	require.NoError(t, err)

	ctx := WithCookies(context.Background(), []*http.Cookie{
		{Name: "sessionid", Value: "browser-session"},
		{Name: "token", Value: "browser-token"},
	})
	ctx = WithRequestID(ctx, "req-1")
	_, err = c.SetBookStarred(ctx, "b1", true)
	require.NoError(t, err)

	req, _ := rec.last()
	assert.Equal(t, "browser-token", req.Header.Get("X-Custom-CSRF"))
	assert.Equal(t, "req-1", req.Header.Get("X-Request-ID"))
	cookie, err := req.Cookie("sessionid")
	require.NoError(t, err)
	assert.Equal(t, "browser-session", cookie.Value)
}

func TestClient_RetriesTooManyRequests(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			w.Header().Set("Retry-After", "0")
			http.Error(w, `{"detail": "throttled"}`, http.StatusTooManyRequests)
			return
		}
		_, _ = io.WriteString(w, `{"count": 1, "results": [{"id": "b1"}]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, RetryCount: 1})
	require.NoError(t, err)
	books, err := c.ListBooks(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, books.Count)
	mu.Lock()
	assert.Equal(t, 2, calls)
	mu.Unlock()

	// without retries the 429 reaches the caller
	mu.Lock()
	calls = 0
	mu.Unlock()
	c, err = New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = c.ListBooks(context.Background(), 0)
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(err))
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}

func TestRetryAfter(t *testing.T) {
	response := func(status int, retryAfter string) *resty.Response {
		header := http.Header{}
		if retryAfter != "" {
			header.Set("Retry-After", retryAfter)
		}
		return &resty.Response{RawResponse: &http.Response{StatusCode: status, Header: header}}
	}

	d, err := retryAfter(nil, response(http.StatusTooManyRequests, "3"))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	d, err = retryAfter(nil, response(http.StatusTooManyRequests, time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)))
	require.NoError(t, err)
	assert.InDelta(t, float64(time.Minute), float64(d), float64(2*time.Second))

	d, err = retryAfter(nil, response(http.StatusTooManyRequests, ""))
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	d, err = retryAfter(nil, response(http.StatusServiceUnavailable, "3"))
	require.NoError(t, err)
	assert.Zero(t, d)
}

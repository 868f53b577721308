package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"pp-viewer/model"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// PageSize is the number of records requested from list endpoints.
const PageSize = 100

const (
	DefaultBaseURL        = "http://localhost"
	DefaultCSRFCookieName = "csrftoken"
	DefaultCSRFHeaderName = "X-CSRFToken"

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 256
)

type Config struct {
	BaseURL        string
	CSRFCookieName string
	CSRFHeaderName string
	// RetryCount and Timeout are zero unless explicitly configured: a failed
	// request is reported to the caller as is.
	RetryCount int
	Timeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		CSRFCookieName: DefaultCSRFCookieName,
		CSRFHeaderName: DefaultCSRFHeaderName,
	}
}

type Option func(*Client)

// WithCookieJar makes the client keep and send cookies across requests. The
// CLI uses it; the web app forwards each browser's cookies through the
// request context instead.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client is the single pre-configured API client shared by every view.
type Client struct {
	cfg    Config
	base   *url.URL
	jar    http.CookieJar
	logger *zap.Logger
	resty  *resty.Client
}

func New(cfg Config, opts ...Option) (*Client, error) {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.CSRFCookieName == "" {
		cfg.CSRFCookieName = defaults.CSRFCookieName
	}
	if cfg.CSRFHeaderName == "" {
		cfg.CSRFHeaderName = defaults.CSRFHeaderName
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse api base url: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("api base url must be an absolute http(s) url: %q", cfg.BaseURL)
	}

	c := &Client{
		cfg:    cfg,
		base:   base,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetCookieJar(c.jar)
	client.SetLogger(c.logger.Sugar())
	client.SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.RetryCount > 0 {
		client.SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(time.Second).
			SetRetryAfter(retryAfter).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() == http.StatusTooManyRequests
			})
	}
	client.OnBeforeRequest(c.prepare)
	client.OnAfterResponse(c.logResponse)
	c.resty = client
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// WithCredentials reports that cookies are attached to every request.
func (c *Client) WithCredentials() bool {
	return true
}

func (c *Client) CSRFCookieName() string {
	return c.cfg.CSRFCookieName
}

func (c *Client) CSRFHeaderName() string {
	return c.cfg.CSRFHeaderName
}

func (c *Client) prepare(_ *resty.Client, r *resty.Request) error {
	ctx := r.Context()
	for _, cookie := range CookiesFrom(ctx) {
		if !hasCookie(r.Cookies, cookie.Name) {
			r.SetCookie(cookie)
		}
	}
	if id := RequestIDFrom(ctx); id != "" {
		r.SetHeader(requestIDHeader, id)
	}
	if isStateChanging(r.Method) {
		if token := c.csrfToken(ctx); token != "" {
			r.SetHeader(c.cfg.CSRFHeaderName, token)
		}
	}
	return nil
}

// csrfToken looks the token up in the forwarded cookies first, then in the jar.
func (c *Client) csrfToken(ctx context.Context) string {
	for _, cookie := range CookiesFrom(ctx) {
		if cookie.Name == c.cfg.CSRFCookieName {
			return cookie.Value
		}
	}
	if c.jar == nil {
		return ""
	}
	for _, cookie := range c.jar.Cookies(c.base) {
		if cookie.Name == c.cfg.CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug("api response",
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
		zap.String("request_id", RequestIDFrom(resp.Request.Context())))
	return nil
}

func (c *Client) ListBooks(ctx context.Context, page int) (*model.List[model.Book], error) {
	var list model.List[model.Book]
	if err := c.get(ctx, "/books/", "", listQuery(page), &list); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return &list, nil
}

func (c *Client) GetBook(ctx context.Context, id string) (*model.BookDetail, error) {
	var book model.BookDetail
	if err := c.get(ctx, "/books/{id}/", id, nil, &book); err != nil {
		return nil, fmt.Errorf("failed to get book %s: %w", id, err)
	}
	return &book, nil
}

func (c *Client) GetPage(ctx context.Context, id string) (*model.Page, error) {
	var page model.Page
	if err := c.get(ctx, "/pages/{id}/", id, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", id, err)
	}
	return &page, nil
}

func (c *Client) ListCharacters(ctx context.Context, page int) (*model.List[model.Character], error) {
	var list model.List[model.Character]
	if err := c.get(ctx, "/characters/", "", listQuery(page), &list); err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return &list, nil
}

func (c *Client) SetBookStarred(ctx context.Context, id string, starred bool) (*model.Book, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]bool{"starred": starred}).
		Patch("/books/{id}/")
	if err != nil {
		return nil, fmt.Errorf("failed to update book %s: %w", id, err)
	}
	var book model.Book
	if err := decode(resp, &book); err != nil {
		return nil, fmt.Errorf("failed to update book %s: %w", id, err)
	}
	return &book, nil
}

func (c *Client) get(ctx context.Context, path, id string, query url.Values, out any) error {
	req := c.resty.R().SetContext(ctx)
	if id != "" {
		req.SetPathParam("id", id)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func decode(resp *resty.Response, out any) error {
	if !resp.IsSuccess() {
		return statusError(resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusError(resp *resty.Response) *StatusError {
	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	path := resp.Request.URL
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		path = resp.RawResponse.Request.URL.Path
	}
	return &StatusError{
		Method:     resp.Request.Method,
		Path:       path,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}

func listQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	q.Set("page_size", strconv.Itoa(PageSize))
	return q
}

func isStateChanging(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func hasCookie(cookies []*http.Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name {
			return true
		}
	}
	return false
}

func retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp.StatusCode() == http.StatusTooManyRequests {
		if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				return seconds, nil
			}
			if t, err := http.ParseTime(retryAfter); err == nil {
				return time.Until(t), nil
			}
		}
		return time.Second, nil
	}
	return 0, nil
}

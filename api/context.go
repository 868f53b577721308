package api

import (
	"context"
	"net/http"
)

type ctxKey int

const (
	cookiesKey ctxKey = iota
	requestIDKey
)

// WithCookies attaches the caller's cookies to ctx. Every request issued with
// the returned context carries them, which is how a browser's session and
// csrftoken reach the API.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	if len(cookies) == 0 {
		return ctx
	}
	return context.WithValue(ctx, cookiesKey, cookies)
}

func CookiesFrom(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey).([]*http.Cookie)
	return cookies
}

func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

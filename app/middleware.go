package app

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"pp-viewer/api"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"

	csrfTokenLength = 32
	csrfAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	csrfCookieAge   = 365 * 24 * 60 * 60
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// newCSRFToken returns a token in Django's format: 32 characters drawn from
// [a-zA-Z0-9].
func newCSRFToken() (string, error) {
	token := make([]byte, 0, csrfTokenLength)
	buf := make([]byte, csrfTokenLength)
	for len(token) < csrfTokenLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			// 248 is the largest multiple of 62 below 256
			if b >= 248 || len(token) == csrfTokenLength {
				continue
			}
			token = append(token, csrfAlphabet[int(b)%len(csrfAlphabet)])
		}
	}
	return string(token), nil
}

// issueCSRFCookie sets a fresh csrf cookie on the response and on r, so the
// current request already renders forms and calls the API with it.
func (a *App) issueCSRFCookie(w http.ResponseWriter, r *http.Request) error {
	token, err := newCSRFToken()
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     a.cfg.CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfCookieAge,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	return nil
}

// withRequestContext tags each request with an id, issues the csrf cookie
// when the browser has none, and forwards the browser's cookies to the API
// client through the request context.
func (a *App) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			if u, err := uuid.NewV7(); err == nil {
				id = u.String()
			}
		}
		w.Header().Set(requestIDHeader, id)

		if a.csrfCookie(r) == "" {
			if err := a.issueCSRFCookie(w, r); err != nil {
				a.logger.Error("failed to issue csrf cookie", zap.String("request_id", id), zap.Error(err))
			}
		}

		ctx := api.WithRequestID(r.Context(), id)
		ctx = api.WithCookies(ctx, r.Cookies())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))
		a.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", id))
	})
}

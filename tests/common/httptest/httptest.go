//go:build unit || e2e

// Package httptest drives a gin router in-process and reads back what it recorded.
package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"room-reservation/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Request is one call against the router. Body is sent as JSON when set.
type Request struct {
	Method  string
	Path    string
	Body    any
	Token   string
	Cookies []*http.Cookie
}

func Do(t *testing.T, router *gin.Engine, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if r.Body != nil {
		var err error
		payload, err = json.Marshal(r.Body)
		require.NoError(t, err, "request body must encode to JSON")
	}

	req := httptest.NewRequest(r.Method, r.Path, bytes.NewReader(payload))
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	for _, c := range r.Cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, router, Request{Method: method, Path: path, Body: body, Token: authToken})
}

func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, router, Request{Method: method, Path: path, Body: body, Token: authToken, Cookies: cookies})
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func AccessTokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	return ExtractCookie(w, cookie.AccessTokenCookieName)
}

func RefreshTokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	return ExtractCookie(w, cookie.RefreshTokenCookieName)
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "response body is not the expected JSON: %s", body.String())
	return err
}

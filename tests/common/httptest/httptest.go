//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Request describes one call against a gin engine. A non-nil JSON value is
// encoded as the body; Raw is sent untouched otherwise.
type Request struct {
	Method  string
	Path    string
	JSON    any
	Raw     []byte
	Headers map[string]string
	Cookies []*http.Cookie
	Bearer  string
}

func (r Request) Do(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	body := r.Raw
	if r.JSON != nil {
		encoded, err := json.Marshal(r.JSON)
		require.NoError(t, err, "encode request body")
		body = encoded
	}

	req := httptest.NewRequest(r.Method, r.Path, bytes.NewReader(body))
	if r.JSON != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	if r.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+r.Bearer)
	}
	for _, c := range r.Cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	return Request{Method: method, Path: path, JSON: body, Bearer: bearer}.Do(t, router)
}

func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	return Request{Method: method, Path: path, JSON: body, Cookies: cookies, Bearer: bearer}.Do(t, router)
}

// PerformRawRequest sends body byte for byte, for the webhook signature and
// malformed JSON cases.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return Request{Method: method, Path: path, Raw: body, Headers: headers}.Do(t, router)
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

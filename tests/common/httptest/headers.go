//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const RequestIDHeader = "X-Request-ID"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

// RequestID is the id the logging middleware echoed back.
func RequestID(w *httptest.ResponseRecorder) string {
	return w.Header().Get(RequestIDHeader)
}

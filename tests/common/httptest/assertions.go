//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"room-reservation/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "cannot decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	msg, ok := ErrorMessage(w)
	if !assert.True(t, ok, "body is not an error envelope: %s", w.Body.String()) {
		return
	}
	if expectedMsg != "" {
		assert.Contains(t, msg, expectedMsg)
	}
}

// ErrorMessage reads error.message from an httperr envelope.
func ErrorMessage(w *httptest.ResponseRecorder) (string, bool) {
	var res httperr.Response
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		return "", false
	}
	return res.Error.Message, true
}

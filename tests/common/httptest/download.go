//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertAttachment checks a file download response.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, contentType, filename string) {
	t.Helper()
	assert.Equal(t, contentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename="+filename, w.Header().Get("Content-Disposition"))
}

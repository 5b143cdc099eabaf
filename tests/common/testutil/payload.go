//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Payload turns a request DTO into its JSON object form and applies edits,
// for bodies the typed DTO cannot express.
func Payload(t *testing.T, v any, edits ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) func(map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}

// Honeypot fills the hidden form field bots tend to complete.
func Honeypot() func(map[string]any) {
	return Set("website", "http://spam.example")
}

//go:build unit

package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"atlas-hotel/internal/infra/mailer"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeResend(t *testing.T, status int, got *map[string]any) *resend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"id":"email_1"}`))
			return
		}
		_, _ = w.Write([]byte(`{"statusCode":500,"name":"application_error","message":"boom"}`))
	}))
	t.Cleanup(srv.Close)

	client := resend.NewClient("re_test")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return client
}

func TestResend_Send(t *testing.T) {
	var body map[string]any
	m := mailer.NewResendWithClient(fakeResend(t, http.StatusOK, &body), "Hotel Atlas <hello@atlas.test>")

	err := m.Send(context.Background(), shared.Email{
		To:      "guest@example.com",
		Subject: "Votre demande",
		HTML:    "<p>Merci</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hotel Atlas <hello@atlas.test>", body["from"])
	assert.Equal(t, []any{"guest@example.com"}, body["to"])
	assert.Equal(t, "Votre demande", body["subject"])
	assert.Equal(t, "<p>Merci</p>", body["html"])
}

func TestResend_ProviderFailure(t *testing.T) {
	m := mailer.NewResendWithClient(fakeResend(t, http.StatusInternalServerError, nil), "hello@atlas.test")

	err := m.Send(context.Background(), shared.Email{To: "guest@example.com", Subject: "s", HTML: "h"})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrEmailProviderFailure))
}

func TestResend_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MailConfig
		to   string
	}{
		{name: "no api key", cfg: config.MailConfig{From: "hello@atlas.test"}, to: "guest@example.com"},
		{name: "no sender", cfg: config.MailConfig{ResendAPIKey: "re_test"}, to: "guest@example.com"},
		{name: "no recipient", cfg: config.MailConfig{ResendAPIKey: "re_test", From: "hello@atlas.test"}, to: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mailer.NewResend(tt.cfg).Send(context.Background(), shared.Email{To: tt.to, Subject: "s"})
			assert.True(t, errs.Is(err, errs.ErrEmailNotConfigured))
		})
	}
}

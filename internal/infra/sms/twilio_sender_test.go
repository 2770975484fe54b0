package sms

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTwilioSender(baseURL string) *twilioSender {
	sender := NewTwilioSender("AC123", "token456", "+15005550006", discardLogger())

	concrete := sender.(*twilioSender)
	concrete.baseURL = baseURL

	return concrete
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTwilioSender_Send(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"To":   r.PostFormValue("To"),
			"From": r.PostFormValue("From"),
			"Body": r.PostFormValue("Body"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid": "SM0001", "status": "queued"}`))
	}))
	defer server.Close()

	sender := newTestTwilioSender(server.URL)

	sid, err := sender.Send(context.Background(), "+886912345678", "need help")
	require.NoError(t, err)
	assert.Equal(t, "SM0001", sid)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "token456", gotPass)
	assert.Equal(t, "+886912345678", gotForm["To"])
	assert.Equal(t, "+15005550006", gotForm["From"])
	assert.Equal(t, "need help", gotForm["Body"])
}

func TestTwilioSender_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Authentication Error"}`))
	}))
	defer server.Close()

	sender := newTestTwilioSender(server.URL)

	sid, err := sender.Send(context.Background(), "+886912345678", "need help")
	assert.Error(t, err)
	assert.Empty(t, sid)
	assert.Contains(t, err.Error(), "401")
}

func TestNoopSender_Send(t *testing.T) {
	sender := &noopSender{logger: discardLogger()}

	sid, err := sender.Send(context.Background(), "+886912345678", "need help")
	assert.NoError(t, err)
	assert.Equal(t, "noop", sid)
}

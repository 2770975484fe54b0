// Package sms contains the outbound text-message infrastructure used by the
// SOS relay.
package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	twilioAPIBase      = "https://api.twilio.com"
	twilioHTTPTimeout  = 30 * time.Second
	maxErrorBodyLength = 512
)

// twilioSender implements SMSSender against the Twilio Messages REST API.
type twilioSender struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	logger     *slog.Logger
}

// twilioMessageResponse is the subset of Twilio's create-message response the
// service cares about.
type twilioMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// NewTwilioSender creates an SMSSender backed by Twilio.
func NewTwilioSender(accountSID, authToken, fromNumber string, logger *slog.Logger) service.SMSSender {
	return &twilioSender{
		baseURL:    twilioAPIBase,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{
			Timeout: twilioHTTPTimeout,
		},
		logger: logger,
	}
}

// Send posts one message to Twilio and returns the delivery SID.
func (s *twilioSender) Send(ctx context.Context, to string, body string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.fromNumber)
	form.Set("Body", body)

	endpoint := s.baseURL + "/2010-04-01/Accounts/" + s.accountSID + "/Messages.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "twilio request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))

		return "", errors.Errorf("twilio returned non-success status %d: %s", resp.StatusCode, string(detail))
	}

	var msg twilioMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", errors.Wrap(err, "failed to decode twilio response")
	}

	s.logger.Debug("SMS dispatched",
		slog.String("to", to),
		slog.String("sid", msg.SID),
		slog.String("status", msg.Status),
	)

	return msg.SID, nil
}

package sms

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/service"

	"go.uber.org/fx"
)

// noopSender stands in when no SMS provider is configured. It logs the
// message instead of delivering it, which keeps local development working.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(_ context.Context, to string, body string) (string, error) {
	s.logger.Info("[NoopSMS] SMS delivery disabled, skipping",
		slog.String("to", to),
		slog.Int("bodyLength", len(body)),
	)

	return "noop", nil
}

// SenderParams holds dependencies for SMSSender, injected by Fx.
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMSSender creates an SMSSender based on configuration.
func NewSMSSender(params SenderParams) service.SMSSender {
	cfg := params.Config.Twilio
	logger := params.Logger

	if cfg == nil || cfg.AccountSID == "" {
		logger.Warn("Twilio is not configured, SOS messages will not be delivered")

		return &noopSender{logger: logger}
	}

	logger.Info("Using Twilio SMS sender",
		slog.String("fromNumber", cfg.FromNumber),
	)

	return NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.FromNumber, logger)
}

package notify

import (
	"context"
	"log/slog"
)

// LogEmailSender is the default sender used when no email provider is
// configured. It logs the message and reports a degraded delivery so the
// caller knows nothing actually went out.
type LogEmailSender struct {
	Logger *slog.Logger
	From   string
}

var _ EmailSender = (*LogEmailSender)(nil)

func (s *LogEmailSender) SendOTPEmail(ctx context.Context, to, code, flow string) DeliveryResult {
	s.Logger.Info("email delivery disabled, OTP not sent",
		slog.String("to", to), slog.String("flow", flow))
	return DeliveryResult{Outcome: DeliveryDegraded}
}

func (s *LogEmailSender) SendWelcomeEmail(ctx context.Context, to, username string) DeliveryResult {
	s.Logger.Info("email delivery disabled, welcome mail not sent",
		slog.String("to", to), slog.String("username", username))
	return DeliveryResult{Outcome: DeliveryDegraded}
}

func (s *LogEmailSender) SendPasswordResetEmail(ctx context.Context, to, code string) DeliveryResult {
	s.Logger.Info("email delivery disabled, reset code not sent", slog.String("to", to))
	return DeliveryResult{Outcome: DeliveryDegraded}
}

// LogSMSSender is the default SMS sender when no SMS provider is configured.
type LogSMSSender struct {
	Logger *slog.Logger
}

var _ SMSSender = (*LogSMSSender)(nil)

func (s *LogSMSSender) SendOTPSMS(ctx context.Context, phone, code string) DeliveryResult {
	s.Logger.Info("sms delivery disabled, OTP not sent", slog.String("phone", phone))
	return DeliveryResult{Outcome: DeliveryDegraded}
}

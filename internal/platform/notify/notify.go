// Package notify holds the outbound email/SMS senders. Delivery failures
// never abort the caller's primary action; they surface as a typed
// DeliveryResult so the degradation is explicit instead of a bare log line.
package notify

import "context"

// DeliveryOutcome classifies how an outbound notification went.
type DeliveryOutcome string

const (
	// DeliveryOK: the provider accepted the message.
	DeliveryOK DeliveryOutcome = "ok"
	// DeliveryDegraded: sending is disabled or unconfigured; the primary
	// action proceeded without it.
	DeliveryDegraded DeliveryOutcome = "degraded"
	// DeliveryFailed: the provider rejected the message.
	DeliveryFailed DeliveryOutcome = "failed"
)

// DeliveryResult reports an outbound call's outcome to the caller.
type DeliveryResult struct {
	Outcome DeliveryOutcome
	Err     error
}

// OK reports whether the message was accepted by the provider.
func (r DeliveryResult) OK() bool { return r.Outcome == DeliveryOK }

// EmailSender delivers transactional email (OTP codes, welcome mail).
type EmailSender interface {
	SendOTPEmail(ctx context.Context, to, code, flow string) DeliveryResult
	SendWelcomeEmail(ctx context.Context, to, username string) DeliveryResult
	SendPasswordResetEmail(ctx context.Context, to, code string) DeliveryResult
}

// SMSSender delivers one-time codes by SMS.
type SMSSender interface {
	SendOTPSMS(ctx context.Context, phone, code string) DeliveryResult
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event row.
type Event struct {
	EventID              string          `db:"event_id"`
	ChannelID            string          `db:"channel_id"`
	Name                 string          `db:"name"`
	Description          *string         `db:"description"`
	EventDate            time.Time       `db:"event_date"`
	EndDate              *time.Time      `db:"end_date"`
	Location             *string         `db:"location"`
	ImageURL             *string         `db:"image_url"`
	MaxAttendees         *int            `db:"max_attendees"`
	RegistrationDeadline *time.Time      `db:"registration_deadline"`
	RequiresPayment      bool            `db:"requires_payment"`
	Price                decimal.Decimal `db:"price"`
	Currency             string          `db:"currency"`
	Timestamps
}

// EventRegistration row. UNIQUE(event_id, user_id) closes the duplicate
// registration race at the storage layer.
type EventRegistration struct {
	RegistrationID string           `db:"registration_id"`
	EventID        string           `db:"event_id"`
	UserID         string           `db:"user_id"`
	TicketCode     string           `db:"ticket_code"`
	CheckedIn      bool             `db:"checked_in"`
	CheckInTime    *time.Time       `db:"check_in_time"`
	PaymentStatus  string           `db:"payment_status"`
	PaymentAmount  *decimal.Decimal `db:"payment_amount"`
	RegisteredAt   time.Time        `db:"registered_at"`
}

// DiscountCode row.
type DiscountCode struct {
	DiscountID    string          `db:"discount_id"`
	EventID       string          `db:"event_id"`
	Code          string          `db:"code"`
	DiscountType  string          `db:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value"`
	MaxUses       *int            `db:"max_uses"`
	TimesUsed     int             `db:"times_used"`
	ValidUntil    *time.Time      `db:"valid_until"`
	CreatedAt     time.Time       `db:"created_at"`
}

// EventTransaction row.
type EventTransaction struct {
	TransactionID    string          `db:"transaction_id"`
	EventID          string          `db:"event_id"`
	UserID           string          `db:"user_id"`
	RegistrationID   string          `db:"registration_id"`
	Amount           decimal.Decimal `db:"amount"`
	Currency         string          `db:"currency"`
	PaymentMethod    string          `db:"payment_method"`
	ProviderIntentID *string         `db:"provider_intent_id"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

// EventAlert row.
type EventAlert struct {
	AlertID   string     `db:"alert_id"`
	EventID   string     `db:"event_id"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	CreatedBy string     `db:"created_by"`
	CreatedAt time.Time  `db:"created_at"`
	SentAt    *time.Time `db:"sent_at"`
}

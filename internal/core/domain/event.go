package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a scheduled happening owned by a channel. Paid events carry a
// price and currency; capacity is enforced at registration time.
type Event struct {
	EventID              string          `json:"eventID"`
	ChannelID            string          `json:"channelID"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	EventDate            time.Time       `json:"eventDate"`
	EndDate              *time.Time      `json:"endDate,omitempty"`
	Location             string          `json:"location,omitempty"`
	ImageURL             string          `json:"imageURL,omitempty"`
	MaxAttendees         *int            `json:"maxAttendees,omitempty"`
	RegistrationDeadline *time.Time      `json:"registrationDeadline,omitempty"`
	RequiresPayment      bool            `json:"requiresPayment"`
	Price                decimal.Decimal `json:"price"`
	Currency             string          `json:"currency"`
	Timestamps
}

// RegistrationOpen reports whether the event still accepts registrations at
// the given instant, ignoring capacity.
func (e *Event) RegistrationOpen(now time.Time) bool {
	return e.RegistrationDeadline == nil || !now.After(*e.RegistrationDeadline)
}

// PaymentStatus of an event registration.
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentPaid        PaymentStatus = "paid"
	PaymentNotRequired PaymentStatus = "not_required"
)

// EventRegistration links a user to an event. At most one registration per
// (event, user) pair; the unique index in storage enforces it.
type EventRegistration struct {
	RegistrationID string           `json:"registrationID"`
	EventID        string           `json:"eventID"`
	UserID         string           `json:"userID"`
	TicketCode     string           `json:"ticketCode"`
	CheckedIn      bool             `json:"checkedIn"`
	CheckInTime    *time.Time       `json:"checkInTime,omitempty"`
	PaymentStatus  PaymentStatus    `json:"paymentStatus"`
	PaymentAmount  *decimal.Decimal `json:"paymentAmount,omitempty"`
	RegisteredAt   time.Time        `json:"registeredAt"`
}

// DiscountType selects how a discount code reduces the price.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountCode is a per-event code with an optional usage cap and expiry.
type DiscountCode struct {
	DiscountID    string          `json:"discountID"`
	EventID       string          `json:"eventID"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MaxUses       *int            `json:"maxUses,omitempty"`
	TimesUsed     int             `json:"timesUsed"`
	ValidUntil    *time.Time      `json:"validUntil,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Apply computes the discount against a price without mutating anything.
// The final price is clamped at zero.
func (d *DiscountCode) Apply(price decimal.Decimal) (discountAmount, finalPrice decimal.Decimal) {
	if d.DiscountType == DiscountPercentage {
		discountAmount = price.Mul(d.DiscountValue).Div(decimal.NewFromInt(100))
	} else {
		discountAmount = d.DiscountValue
	}
	finalPrice = price.Sub(discountAmount)
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}
	return discountAmount, finalPrice
}

// Usable reports whether the code can still be redeemed at the given
// instant, and the reason when it cannot.
func (d *DiscountCode) Usable(now time.Time) (bool, string) {
	if d.MaxUses != nil && d.TimesUsed >= *d.MaxUses {
		return false, "Discount code has reached maximum uses"
	}
	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return false, "Discount code has expired"
	}
	return true, ""
}

// TransactionStatus of an event payment transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// EventTransaction records a payment attempt against a registration,
// keyed locally and by the provider's intent id.
type EventTransaction struct {
	TransactionID    string            `json:"transactionID"`
	EventID          string            `json:"eventID"`
	UserID           string            `json:"userID"`
	RegistrationID   string            `json:"registrationID"`
	Amount           decimal.Decimal   `json:"amount"`
	Currency         string            `json:"currency"`
	PaymentMethod    string            `json:"paymentMethod"`
	ProviderIntentID string            `json:"providerIntentID,omitempty"`
	Status           TransactionStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// EventAlert is an announcement pushed to an event's registrants.
type EventAlert struct {
	AlertID   string     `json:"alertID"`
	EventID   string     `json:"eventID"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

// EventStats is the admin-facing aggregation over registrations and
// completed transactions.
type EventStats struct {
	RegisteredCount     int             `json:"registeredCount"`
	PaidCount           int             `json:"paidCount"`
	PendingPaymentCount int             `json:"pendingPaymentCount"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	AvailableSpots      *int            `json:"availableSpots,omitempty"`
}

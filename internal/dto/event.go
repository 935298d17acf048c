package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// CreateEventRequest creates an event in a channel (admin only).
type CreateEventRequest struct {
	ChannelID            string           `json:"channel_id" binding:"required"`
	Name                 string           `json:"name" binding:"required,min=1,max=255"`
	Description          string           `json:"description" binding:"omitempty,max=5000"`
	EventDate            time.Time        `json:"event_date" binding:"required"`
	EndDate              *time.Time       `json:"end_date"`
	Location             string           `json:"location" binding:"omitempty,max=500"`
	ImageURL             string           `json:"image_url" binding:"omitempty,url"`
	MaxAttendees         *int             `json:"max_attendees" binding:"omitempty,min=1"`
	RegistrationDeadline *time.Time       `json:"registration_deadline"`
	RequiresPayment      bool             `json:"requires_payment"`
	Price                *decimal.Decimal `json:"price"`
	Currency             string           `json:"currency" binding:"omitempty,len=3"`
}

// UpdateEventRequest partially updates an event. Pointers distinguish
// omitted fields from zero values.
type UpdateEventRequest struct {
	Name                 *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description          *string          `json:"description" binding:"omitempty,max=5000"`
	EventDate            *time.Time       `json:"event_date"`
	EndDate              *time.Time       `json:"end_date"`
	Location             *string          `json:"location" binding:"omitempty,max=500"`
	ImageURL             *string          `json:"image_url" binding:"omitempty,url"`
	MaxAttendees         *int             `json:"max_attendees" binding:"omitempty,min=1"`
	RegistrationDeadline *time.Time       `json:"registration_deadline"`
	RequiresPayment      *bool            `json:"requires_payment"`
	Price                *decimal.Decimal `json:"price"`
	Currency             *string          `json:"currency" binding:"omitempty,len=3"`
}

// EventFeedParams filter the subscribed-channels event feed.
type EventFeedParams struct {
	PageParams
	ChannelID      string `form:"channel_id"`
	UpcomingOnly   *bool  `form:"upcoming_only"`
	RegisteredOnly bool   `form:"registered_only"`
	Search         string `form:"search"`
}

// EventResponse is an event enriched with the caller's context.
type EventResponse struct {
	EventID              string           `json:"id"`
	ChannelID            string           `json:"channelID"`
	Name                 string           `json:"name"`
	Description          string           `json:"description,omitempty"`
	EventDate            time.Time        `json:"eventDate"`
	EndDate              *time.Time       `json:"endDate,omitempty"`
	Location             string           `json:"location,omitempty"`
	ImageURL             string           `json:"imageURL,omitempty"`
	MaxAttendees         *int             `json:"maxAttendees,omitempty"`
	RegistrationDeadline *time.Time       `json:"registrationDeadline,omitempty"`
	RequiresPayment      bool             `json:"requiresPayment"`
	Price                decimal.Decimal  `json:"price"`
	Currency             string           `json:"currency"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
	RegisteredCount      int              `json:"registeredCount"`
	IsRegistered         bool             `json:"isRegistered"`
	HasPaid              bool             `json:"hasPaid"`
	Channel              *ChannelSummary  `json:"channel,omitempty"`
}

// EventListResponse is the paginated feed envelope.
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	HasMore  bool            `json:"has_more"`
}

// RegistrationResponse is an event registration, optionally with the
// registrant's summary for admin listings.
type RegistrationResponse struct {
	RegistrationID string           `json:"id"`
	EventID        string           `json:"eventID"`
	UserID         string           `json:"userID"`
	TicketCode     string           `json:"ticketCode"`
	CheckedIn      bool             `json:"checkedIn"`
	PaymentStatus  string           `json:"paymentStatus"`
	PaymentAmount  *decimal.Decimal `json:"paymentAmount,omitempty"`
	RegisteredAt   time.Time        `json:"registeredAt"`
	User           *UserSummary     `json:"user,omitempty"`
}

// ToRegistrationResponse converts a domain registration.
func ToRegistrationResponse(r *domain.EventRegistration) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID: r.RegistrationID,
		EventID:        r.EventID,
		UserID:         r.UserID,
		TicketCode:     r.TicketCode,
		CheckedIn:      r.CheckedIn,
		PaymentStatus:  string(r.PaymentStatus),
		PaymentAmount:  r.PaymentAmount,
		RegisteredAt:   r.RegisteredAt,
	}
}

// RegistrationActionResponse is the envelope for register/cancel actions.
type RegistrationActionResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	Registration *RegistrationResponse `json:"registration,omitempty"`
}

// RegistrationListResponse is the admin listing envelope.
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Total         int                    `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
	HasMore       bool                   `json:"has_more"`
}

// PaymentIntentRequest optionally applies a discount code.
type PaymentIntentRequest struct {
	DiscountCode string `json:"discount_code" binding:"omitempty,max=50"`
}

// PaymentIntentResponse returns what the client needs to finish payment.
type PaymentIntentResponse struct {
	ClientSecret string          `json:"client_secret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

// CreateDiscountRequest creates a per-event discount code (admin only).
type CreateDiscountRequest struct {
	Code          string          `json:"code" binding:"required,min=3,max=50"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal `json:"discount_value" binding:"required"`
	MaxUses       *int            `json:"max_uses" binding:"omitempty,min=1"`
	ValidUntil    *time.Time      `json:"valid_until"`
}

// DiscountCodeResponse is the created discount code.
type DiscountCodeResponse struct {
	DiscountID    string          `json:"id"`
	EventID       string          `json:"eventID"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MaxUses       *int            `json:"maxUses,omitempty"`
	TimesUsed     int             `json:"timesUsed"`
	ValidUntil    *time.Time      `json:"validUntil,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ApplyDiscountRequest previews a discount code.
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyDiscountResponse is the pure price preview; nothing is consumed.
type ApplyDiscountResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
}

// CreateAlertRequest creates an event alert (admin only).
type CreateAlertRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// AlertResponse is an event alert.
type AlertResponse struct {
	AlertID   string     `json:"id"`
	EventID   string     `json:"eventID"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

// AlertListResponse is the paginated alert envelope.
type AlertListResponse struct {
	Alerts   []AlertResponse `json:"alerts"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	HasMore  bool            `json:"has_more"`
}

// EventStatsResponse is the admin statistics view.
type EventStatsResponse struct {
	RegisteredCount     int             `json:"registered_count"`
	PaidCount           int             `json:"paid_count"`
	PendingPaymentCount int             `json:"pending_payment_count"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AvailableSpots      *int            `json:"available_spots,omitempty"`
}

// TicketResponse is the caller's ticket with an embedded QR code.
type TicketResponse struct {
	TicketCode  string `json:"ticket_code"`
	QRCodePNG   string `json:"qr_code_png"`
	CheckedIn   bool   `json:"checked_in"`
	PaymentStatus string `json:"payment_status"`
}

// CheckInRequest marks a ticket as used at the door (admin only).
type CheckInRequest struct {
	TicketCode string `json:"ticket_code" binding:"required"`
}

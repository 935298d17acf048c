package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// EventFeedFilter narrows the subscribed-channels event feed.
type EventFeedFilter struct {
	ChannelID      string
	UpcomingOnly   bool
	RegisteredOnly bool
	Search         string
	Page           int
	PageSize       int
}

// EventRepository defines persistence operations for events, registrations,
// discount codes, transactions and alerts.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	// ListEventsForUser returns events from channels the user subscribes to,
	// plus the total matching count.
	ListEventsForUser(ctx context.Context, userID string, filter EventFeedFilter) ([]domain.Event, int, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID string) error

	// CreateRegistration inserts a registration row. A second insert for the
	// same (event, user) pair hits the unique index and returns ErrDuplicate;
	// there is no check-then-act window.
	CreateRegistration(ctx context.Context, reg domain.EventRegistration) error
	DeleteRegistration(ctx context.Context, eventID, userID string) error
	FindRegistration(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error)
	FindRegistrationByTicket(ctx context.Context, ticketCode string) (*domain.EventRegistration, error)
	ListRegistrations(ctx context.Context, eventID string, page, pageSize int) ([]domain.EventRegistration, int, error)
	CountRegistrations(ctx context.Context, eventID string) (int, error)
	CountRegistrationsByStatus(ctx context.Context, eventID string, status domain.PaymentStatus) (int, error)
	MarkRegistrationPaid(ctx context.Context, registrationID string, amount decimal.Decimal) error
	MarkCheckedIn(ctx context.Context, registrationID string, at time.Time) error

	SaveDiscountCode(ctx context.Context, code domain.DiscountCode) error
	FindDiscountCode(ctx context.Context, eventID, code string) (*domain.DiscountCode, error)
	// ConsumeDiscountCode atomically increments times_used, guarded by the
	// usage cap in the same statement. Returns ErrValidation when the cap is
	// already reached.
	ConsumeDiscountCode(ctx context.Context, eventID, code string) error

	SaveTransaction(ctx context.Context, txn domain.EventTransaction) error
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.EventTransaction, error)
	SumCompletedTransactions(ctx context.Context, eventID string) (decimal.Decimal, error)

	SaveAlert(ctx context.Context, alert domain.EventAlert) error
	ListAlerts(ctx context.Context, eventID string, page, pageSize int) ([]domain.EventAlert, int, error)
}

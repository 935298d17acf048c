package services

import (
	"context"

	"github.com/parishlife/parish_community_app/internal/dto"
)

// EventSvcFacade drives the event vertical: CRUD, the subscribed-channels
// feed, registrations, payments, discount codes, alerts and stats.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, eventID, userID string) (*dto.EventResponse, error)
	ListEvents(ctx context.Context, userID string, params dto.EventFeedParams) (*dto.EventListResponse, error)
	UpdateEvent(ctx context.Context, eventID, userID string, req dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID, userID string) error

	RegisterForEvent(ctx context.Context, eventID, userID string) (*dto.RegistrationActionResponse, error)
	CancelRegistration(ctx context.Context, eventID, userID string) error
	ListRegistrations(ctx context.Context, eventID, userID string, page, pageSize int) (*dto.RegistrationListResponse, error)

	CreatePaymentIntent(ctx context.Context, eventID, userID, discountCode string) (*dto.PaymentIntentResponse, error)
	CreateDiscountCode(ctx context.Context, eventID, userID string, req dto.CreateDiscountRequest) (*dto.DiscountCodeResponse, error)
	ApplyDiscountCode(ctx context.Context, eventID, code string) (*dto.ApplyDiscountResponse, error)

	CreateAlert(ctx context.Context, eventID, userID string, req dto.CreateAlertRequest) (*dto.AlertResponse, error)
	ListAlerts(ctx context.Context, eventID string, page, pageSize int) (*dto.AlertListResponse, error)

	GetEventStats(ctx context.Context, eventID, userID string) (*dto.EventStatsResponse, error)

	GetTicket(ctx context.Context, eventID, userID string) (*dto.TicketResponse, error)
	CheckInTicket(ctx context.Context, eventID, adminUserID, ticketCode string) (*dto.RegistrationResponse, error)
}

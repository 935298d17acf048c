package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/dto"
	"github.com/parishlife/parish_community_app/internal/middleware"
	"github.com/parishlife/parish_community_app/internal/platform/payments"
	"github.com/parishlife/parish_community_app/internal/utils"
)

type eventService struct {
	eventRepo   portsrepo.EventRepository
	channelRepo portsrepo.ChannelRepository
	userRepo    portsrepo.UserRepository
	authorizer  portssvc.ChannelAuthorizerSvc
	payments    payments.Provider
	analytics   *utils.PosthogClientWrapper
}

// NewEventService wires the event vertical: CRUD, registrations, payments,
// discount codes, alerts, stats and tickets.
func NewEventService(
	eventRepo portsrepo.EventRepository,
	channelRepo portsrepo.ChannelRepository,
	userRepo portsrepo.UserRepository,
	authorizer portssvc.ChannelAuthorizerSvc,
	paymentProvider payments.Provider,
	analytics *utils.PosthogClientWrapper,
) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:   eventRepo,
		channelRepo: channelRepo,
		userRepo:    userRepo,
		authorizer:  authorizer,
		payments:    paymentProvider,
		analytics:   analytics,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, req.ChannelID); err != nil {
		return nil, err
	}

	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}
	if req.RequiresPayment && !price.IsPositive() {
		return nil, fmt.Errorf("paid event needs a positive price: %w", apperrors.ErrValidation)
	}
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	now := time.Now().UTC()
	event := domain.Event{
		EventID:              uuid.NewString(),
		ChannelID:            req.ChannelID,
		Name:                 req.Name,
		Description:          req.Description,
		EventDate:            req.EventDate,
		EndDate:              req.EndDate,
		Location:             req.Location,
		ImageURL:             req.ImageURL,
		MaxAttendees:         req.MaxAttendees,
		RegistrationDeadline: req.RegistrationDeadline,
		RequiresPayment:      req.RequiresPayment,
		Price:                price,
		Currency:             currency,
		Timestamps:           domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.analytics.Enqueue(userID, "event_created", map[string]any{"event_id": event.EventID, "requires_payment": event.RequiresPayment})
	return s.enrichEvent(ctx, &event, userID)
}

func (s *eventService) GetEvent(ctx context.Context, eventID, userID string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return s.enrichEvent(ctx, event, userID)
}

func (s *eventService) ListEvents(ctx context.Context, userID string, params dto.EventFeedParams) (*dto.EventListResponse, error) {
	// Upcoming-only is the default; the client opts out explicitly.
	upcoming := true
	if params.UpcomingOnly != nil {
		upcoming = *params.UpcomingOnly
	}
	filter := portsrepo.EventFeedFilter{
		ChannelID:      params.ChannelID,
		UpcomingOnly:   upcoming,
		RegisteredOnly: params.RegisteredOnly,
		Search:         params.Search,
		Page:           params.Page,
		PageSize:       params.PageSize,
	}
	events, total, err := s.eventRepo.ListEventsForUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp, err := s.enrichEvent(ctx, &events[i], userID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	page, pageSize := normalizePage(params.Page, params.PageSize)
	return &dto.EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  page*pageSize < total,
	}, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, userID string, req dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, event.ChannelID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.MaxAttendees != nil {
		event.MaxAttendees = req.MaxAttendees
	}
	if req.RegistrationDeadline != nil {
		event.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.RequiresPayment != nil {
		event.RequiresPayment = *req.RequiresPayment
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.Currency != nil {
		event.Currency = *req.Currency
	}
	if event.RequiresPayment && !event.Price.IsPositive() {
		return nil, fmt.Errorf("paid event needs a positive price: %w", apperrors.ErrValidation)
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return s.enrichEvent(ctx, event, userID)
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, userID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, event.ChannelID); err != nil {
		return err
	}
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *eventService) RegisterForEvent(ctx context.Context, eventID, userID string) (*dto.RegistrationActionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	now := time.Now().UTC()
	if !event.RegistrationOpen(now) {
		return nil, fmt.Errorf("registration deadline passed: %w", apperrors.ErrValidation)
	}
	if event.MaxAttendees != nil {
		count, err := s.eventRepo.CountRegistrations(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		if count >= *event.MaxAttendees {
			return nil, fmt.Errorf("event is full: %w", apperrors.ErrValidation)
		}
	}

	status := domain.PaymentNotRequired
	if event.RequiresPayment {
		status = domain.PaymentPending
	}
	reg := domain.EventRegistration{
		RegistrationID: uuid.NewString(),
		EventID:        eventID,
		UserID:         userID,
		TicketCode:     utils.GenerateTicketCode(),
		PaymentStatus:  status,
		RegisteredAt:   now,
	}
	if err := s.eventRepo.CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("already registered for this event: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	logger.Info("User registered for event", slog.String("event_id", eventID), slog.String("registration_id", reg.RegistrationID))
	s.analytics.Enqueue(userID, "event_registration", map[string]any{"event_id": eventID, "payment_status": string(status)})

	resp := dto.ToRegistrationResponse(&reg)
	message := "Registered successfully"
	if event.RequiresPayment {
		message = "Registered; payment pending"
	}
	return &dto.RegistrationActionResponse{Success: true, Message: message, Registration: &resp}, nil
}

func (s *eventService) CancelRegistration(ctx context.Context, eventID, userID string) error {
	if err := s.eventRepo.DeleteRegistration(ctx, eventID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("not registered for this event: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to cancel registration: %w", err)
	}
	s.analytics.Enqueue(userID, "event_registration_cancelled", map[string]any{"event_id": eventID})
	return nil
}

func (s *eventService) ListRegistrations(ctx context.Context, eventID, userID string, page, pageSize int) (*dto.RegistrationListResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, event.ChannelID); err != nil {
		return nil, err
	}

	regs, total, err := s.eventRepo.ListRegistrations(ctx, eventID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	responses := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		resp := dto.ToRegistrationResponse(&regs[i])
		registrant, err := s.userRepo.FindUserByID(ctx, regs[i].UserID)
		if err != nil {
			logger.Warn("Registrant lookup failed", slog.String("user_id", regs[i].UserID), slog.String("error", err.Error()))
		} else {
			summary := dto.ToUserSummary(registrant)
			resp.User = &summary
		}
		responses = append(responses, resp)
	}

	page, pageSize = normalizePage(page, pageSize)
	return &dto.RegistrationListResponse{
		Registrations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
		HasMore:       page*pageSize < total,
	}, nil
}

func (s *eventService) CreatePaymentIntent(ctx context.Context, eventID, userID, discountCode string) (*dto.PaymentIntentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if !event.RequiresPayment {
		return nil, fmt.Errorf("event does not require payment: %w", apperrors.ErrValidation)
	}

	reg, err := s.eventRepo.FindRegistration(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("register before paying: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to load registration: %w", err)
	}
	if reg.PaymentStatus == domain.PaymentPaid {
		return nil, fmt.Errorf("registration already paid: %w", apperrors.ErrValidation)
	}

	amount := event.Price
	if discountCode != "" {
		discountCode = strings.ToUpper(strings.TrimSpace(discountCode))
		code, err := s.eventRepo.FindDiscountCode(ctx, eventID, discountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("invalid discount code: %w", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to load discount code: %w", err)
		}
		if usable, reason := code.Usable(time.Now().UTC()); !usable {
			return nil, fmt.Errorf("%s: %w", reason, apperrors.ErrValidation)
		}
		_, amount = code.Apply(event.Price)

		// Consumption is a single guarded UPDATE, so a code can never be
		// redeemed past its cap even under concurrent intents.
		if err := s.eventRepo.ConsumeDiscountCode(ctx, eventID, discountCode); err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				return nil, fmt.Errorf("discount code has reached maximum uses: %w", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to consume discount code: %w", err)
		}
	}

	// A fully discounted registration skips the provider entirely.
	if amount.IsZero() {
		if err := s.eventRepo.MarkRegistrationPaid(ctx, reg.RegistrationID, decimal.Zero); err != nil {
			return nil, fmt.Errorf("failed to mark registration paid: %w", err)
		}
		return &dto.PaymentIntentResponse{Amount: decimal.Zero, Currency: event.Currency}, nil
	}

	if s.payments == nil {
		return nil, fmt.Errorf("payments not configured: %w", apperrors.ErrValidation)
	}
	intent, err := s.payments.CreatePaymentIntent(ctx, amount, event.Currency)
	if err != nil {
		logger.Error("Payment provider call failed", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("payment provider unavailable: %w", err)
	}

	txn := domain.EventTransaction{
		TransactionID:    uuid.NewString(),
		EventID:          eventID,
		UserID:           userID,
		RegistrationID:   reg.RegistrationID,
		Amount:           amount,
		Currency:         event.Currency,
		PaymentMethod:    "card",
		ProviderIntentID: intent.ID,
		Status:           domain.TransactionPending,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.eventRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.analytics.Enqueue(userID, "payment_intent_created", map[string]any{"event_id": eventID, "amount": amount.String()})
	return &dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     event.Currency,
	}, nil
}

func (s *eventService) CreateDiscountCode(ctx context.Context, eventID, userID string, req dto.CreateDiscountRequest) (*dto.DiscountCodeResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, event.ChannelID); err != nil {
		return nil, err
	}

	if req.DiscountType == string(domain.DiscountPercentage) && req.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("percentage discount cannot exceed 100: %w", apperrors.ErrValidation)
	}
	if !req.DiscountValue.IsPositive() {
		return nil, fmt.Errorf("discount value must be positive: %w", apperrors.ErrValidation)
	}

	// Codes are stored uppercased so lookups are case-insensitive.
	code := domain.DiscountCode{
		DiscountID:    uuid.NewString(),
		EventID:       eventID,
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MaxUses:       req.MaxUses,
		ValidUntil:    req.ValidUntil,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.eventRepo.SaveDiscountCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("discount code already exists: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save discount code: %w", err)
	}

	return &dto.DiscountCodeResponse{
		DiscountID:    code.DiscountID,
		EventID:       code.EventID,
		Code:          code.Code,
		DiscountType:  string(code.DiscountType),
		DiscountValue: code.DiscountValue,
		MaxUses:       code.MaxUses,
		TimesUsed:     code.TimesUsed,
		ValidUntil:    code.ValidUntil,
		CreatedAt:     code.CreatedAt,
	}, nil
}

// ApplyDiscountCode previews a code against the event price. Nothing is
// consumed; times_used only moves when a payment intent is created.
func (s *eventService) ApplyDiscountCode(ctx context.Context, eventID, code string) (*dto.ApplyDiscountResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	discount, err := s.eventRepo.FindDiscountCode(ctx, eventID, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid discount code: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load discount code: %w", err)
	}
	if usable, reason := discount.Usable(time.Now().UTC()); !usable {
		return nil, fmt.Errorf("%s: %w", reason, apperrors.ErrValidation)
	}

	discountAmount, finalPrice := discount.Apply(event.Price)
	return &dto.ApplyDiscountResponse{
		Success:        true,
		Message:        "Discount applied",
		OriginalPrice:  event.Price,
		DiscountAmount: discountAmount,
		FinalPrice:     finalPrice,
	}, nil
}

func (s *eventService) CreateAlert(ctx context.Context, eventID, userID string, req dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, event.ChannelID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	alert := domain.EventAlert{
		AlertID:   uuid.NewString(),
		EventID:   eventID,
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: userID,
		CreatedAt: now,
		SentAt:    &now,
	}
	if err := s.eventRepo.SaveAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to save alert: %w", err)
	}

	return &dto.AlertResponse{
		AlertID:   alert.AlertID,
		EventID:   alert.EventID,
		Title:     alert.Title,
		Message:   alert.Message,
		CreatedBy: alert.CreatedBy,
		CreatedAt: alert.CreatedAt,
		SentAt:    alert.SentAt,
	}, nil
}

func (s *eventService) ListAlerts(ctx context.Context, eventID string, page, pageSize int) (*dto.AlertListResponse, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	alerts, total, err := s.eventRepo.ListAlerts(ctx, eventID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	responses := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, dto.AlertResponse{
			AlertID:   a.AlertID,
			EventID:   a.EventID,
			Title:     a.Title,
			Message:   a.Message,
			CreatedBy: a.CreatedBy,
			CreatedAt: a.CreatedAt,
			SentAt:    a.SentAt,
		})
	}

	page, pageSize = normalizePage(page, pageSize)
	return &dto.AlertListResponse{
		Alerts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  page*pageSize < total,
	}, nil
}

func (s *eventService) GetEventStats(ctx context.Context, eventID, userID string) (*dto.EventStatsResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, userID, event.ChannelID); err != nil {
		return nil, err
	}

	registered, err := s.eventRepo.CountRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	paid, err := s.eventRepo.CountRegistrationsByStatus(ctx, eventID, domain.PaymentPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to count paid registrations: %w", err)
	}
	pending, err := s.eventRepo.CountRegistrationsByStatus(ctx, eventID, domain.PaymentPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending registrations: %w", err)
	}
	revenue, err := s.eventRepo.SumCompletedTransactions(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	stats := &dto.EventStatsResponse{
		RegisteredCount:     registered,
		PaidCount:           paid,
		PendingPaymentCount: pending,
		TotalRevenue:        revenue,
	}
	if event.MaxAttendees != nil {
		available := *event.MaxAttendees - registered
		if available < 0 {
			available = 0
		}
		stats.AvailableSpots = &available
	}
	return stats, nil
}

func (s *eventService) GetTicket(ctx context.Context, eventID, userID string) (*dto.TicketResponse, error) {
	reg, err := s.eventRepo.FindRegistration(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("not registered for this event: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load registration: %w", err)
	}

	qr, err := utils.TicketQRCodePNG(reg.TicketCode, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to render ticket QR: %w", err)
	}
	return &dto.TicketResponse{
		TicketCode:    reg.TicketCode,
		QRCodePNG:     qr,
		CheckedIn:     reg.CheckedIn,
		PaymentStatus: string(reg.PaymentStatus),
	}, nil
}

func (s *eventService) CheckInTicket(ctx context.Context, eventID, adminUserID, ticketCode string) (*dto.RegistrationResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if err := s.authorizer.AuthorizeChannelAdmin(ctx, adminUserID, event.ChannelID); err != nil {
		return nil, err
	}

	reg, err := s.eventRepo.FindRegistrationByTicket(ctx, ticketCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown ticket: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if reg.EventID != eventID {
		return nil, fmt.Errorf("ticket belongs to another event: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.eventRepo.MarkCheckedIn(ctx, reg.RegistrationID, now); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, fmt.Errorf("ticket already checked in: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to check in ticket: %w", err)
	}
	reg.CheckedIn = true
	reg.CheckInTime = &now

	resp := dto.ToRegistrationResponse(reg)
	if registrant, err := s.userRepo.FindUserByID(ctx, reg.UserID); err == nil {
		summary := dto.ToUserSummary(registrant)
		resp.User = &summary
	}
	return &resp, nil
}

// enrichEvent attaches caller context (registration and payment state),
// the live registration count and a channel summary.
func (s *eventService) enrichEvent(ctx context.Context, event *domain.Event, userID string) (*dto.EventResponse, error) {
	count, err := s.eventRepo.CountRegistrations(ctx, event.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}

	isRegistered := false
	hasPaid := false
	if userID != "" {
		reg, err := s.eventRepo.FindRegistration(ctx, event.EventID, userID)
		switch {
		case err == nil:
			isRegistered = true
			hasPaid = reg.PaymentStatus == domain.PaymentPaid || reg.PaymentStatus == domain.PaymentNotRequired
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed to load registration: %w", err)
		}
	}

	resp := &dto.EventResponse{
		EventID:              event.EventID,
		ChannelID:            event.ChannelID,
		Name:                 event.Name,
		Description:          event.Description,
		EventDate:            event.EventDate,
		EndDate:              event.EndDate,
		Location:             event.Location,
		ImageURL:             event.ImageURL,
		MaxAttendees:         event.MaxAttendees,
		RegistrationDeadline: event.RegistrationDeadline,
		RequiresPayment:      event.RequiresPayment,
		Price:                event.Price,
		Currency:             event.Currency,
		CreatedAt:            event.CreatedAt,
		UpdatedAt:            event.UpdatedAt,
		RegisteredCount:      count,
		IsRegistered:         isRegistered,
		HasPaid:              hasPaid,
	}

	if channel, err := s.channelRepo.FindChannelByID(ctx, event.ChannelID); err == nil {
		resp.Channel = &dto.ChannelSummary{
			ChannelID: channel.ChannelID,
			Name:      channel.Name,
			ImageURL:  channel.ImageURL,
		}
	}
	return resp, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/core/services"
	"github.com/parishlife/parish_community_app/internal/dto"
	"github.com/parishlife/parish_community_app/internal/utils"
)

type EventServiceTestSuite struct {
	suite.Suite
	eventRepo   *MockEventRepository
	channelRepo *MockChannelRepository
	userRepo    *MockUserRepository
	authorizer  *MockChannelAuthorizer
	provider    *stubPaymentProvider
	service     portssvc.EventSvcFacade
	ctx         context.Context
}

func (s *EventServiceTestSuite) SetupTest() {
	s.eventRepo = new(MockEventRepository)
	s.channelRepo = new(MockChannelRepository)
	s.userRepo = new(MockUserRepository)
	s.authorizer = new(MockChannelAuthorizer)
	s.provider = &stubPaymentProvider{}
	s.ctx = context.Background()
	s.service = services.NewEventService(
		s.eventRepo, s.channelRepo, s.userRepo, s.authorizer,
		s.provider, &utils.PosthogClientWrapper{},
	)
}

func (s *EventServiceTestSuite) freeEvent() *domain.Event {
	return &domain.Event{
		EventID:   "event-1",
		ChannelID: "channel-1",
		Name:      "Parish Picnic",
		EventDate: time.Now().UTC().Add(48 * time.Hour),
		Price:     decimal.Zero,
		Currency:  "EUR",
	}
}

func (s *EventServiceTestSuite) paidEvent(price string) *domain.Event {
	event := s.freeEvent()
	event.RequiresPayment = true
	event.Price = decimal.RequireFromString(price)
	return event
}

func (s *EventServiceTestSuite) expectEnrichment() {
	s.eventRepo.On("CountRegistrations", s.ctx, mock.AnythingOfType("string")).Return(0, nil)
	s.eventRepo.On("FindRegistration", s.ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	s.channelRepo.On("FindChannelByID", s.ctx, mock.AnythingOfType("string")).
		Return(&domain.Channel{ChannelID: "channel-1", Name: "Main"}, nil)
}

func (s *EventServiceTestSuite) TestCreateEventRequiresChannelAdmin() {
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "user-1", "channel-1").Return(apperrors.ErrForbidden)

	_, err := s.service.CreateEvent(s.ctx, "user-1", dto.CreateEventRequest{ChannelID: "channel-1", Name: "X"})
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.eventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (s *EventServiceTestSuite) TestCreateEventPaidNeedsPositivePrice() {
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "user-1", "channel-1").Return(nil)

	_, err := s.service.CreateEvent(s.ctx, "user-1", dto.CreateEventRequest{
		ChannelID:       "channel-1",
		Name:            "Fundraiser",
		EventDate:       time.Now().UTC().Add(time.Hour),
		RequiresPayment: true,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestCreateEventDefaultsCurrency() {
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "user-1", "channel-1").Return(nil)

	var saved domain.Event
	s.eventRepo.On("SaveEvent", s.ctx, mock.AnythingOfType("domain.Event")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Event) }).
		Return(nil)
	s.expectEnrichment()

	resp, err := s.service.CreateEvent(s.ctx, "user-1", dto.CreateEventRequest{
		ChannelID: "channel-1",
		Name:      "Parish Picnic",
		EventDate: time.Now().UTC().Add(time.Hour),
	})

	s.Require().NoError(err)
	s.Equal("EUR", saved.Currency)
	s.Equal("Parish Picnic", resp.Name)
}

func (s *EventServiceTestSuite) TestListEventsDefaultsToUpcomingOnly() {
	var filter portsrepo.EventFeedFilter
	s.eventRepo.On("ListEventsForUser", s.ctx, "user-1", mock.AnythingOfType("repositories.EventFeedFilter")).
		Run(func(args mock.Arguments) { filter = args.Get(2).(portsrepo.EventFeedFilter) }).
		Return([]domain.Event{}, 0, nil)

	_, err := s.service.ListEvents(s.ctx, "user-1", dto.EventFeedParams{})
	s.Require().NoError(err)
	s.True(filter.UpcomingOnly)

	optOut := false
	_, err = s.service.ListEvents(s.ctx, "user-1", dto.EventFeedParams{UpcomingOnly: &optOut})
	s.Require().NoError(err)
	s.False(filter.UpcomingOnly)
}

func (s *EventServiceTestSuite) TestRegisterForEventRejectsPastDeadline() {
	event := s.freeEvent()
	deadline := time.Now().UTC().Add(-time.Hour)
	event.RegistrationDeadline = &deadline
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(event, nil)

	_, err := s.service.RegisterForEvent(s.ctx, "event-1", "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.eventRepo.AssertNotCalled(s.T(), "CreateRegistration", mock.Anything, mock.Anything)
}

func (s *EventServiceTestSuite) TestRegisterForEventRejectsFullEvent() {
	event := s.freeEvent()
	capacity := 25
	event.MaxAttendees = &capacity
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(event, nil)
	s.eventRepo.On("CountRegistrations", s.ctx, "event-1").Return(25, nil)

	_, err := s.service.RegisterForEvent(s.ctx, "event-1", "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.eventRepo.AssertNotCalled(s.T(), "CreateRegistration", mock.Anything, mock.Anything)
}

func (s *EventServiceTestSuite) TestRegisterForEventSurfacesDuplicate() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.freeEvent(), nil)
	s.eventRepo.On("CreateRegistration", s.ctx, mock.AnythingOfType("domain.EventRegistration")).
		Return(apperrors.ErrDuplicate)

	_, err := s.service.RegisterForEvent(s.ctx, "event-1", "user-1")
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *EventServiceTestSuite) TestRegisterForFreeEventNeedsNoPayment() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.freeEvent(), nil)

	var created domain.EventRegistration
	s.eventRepo.On("CreateRegistration", s.ctx, mock.AnythingOfType("domain.EventRegistration")).
		Run(func(args mock.Arguments) { created = args.Get(1).(domain.EventRegistration) }).
		Return(nil)

	resp, err := s.service.RegisterForEvent(s.ctx, "event-1", "user-1")

	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal(domain.PaymentNotRequired, created.PaymentStatus)
	s.Contains(created.TicketCode, "TKT-")
	s.Equal(created.TicketCode, resp.Registration.TicketCode)
}

func (s *EventServiceTestSuite) TestRegisterForPaidEventStartsPending() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)

	var created domain.EventRegistration
	s.eventRepo.On("CreateRegistration", s.ctx, mock.AnythingOfType("domain.EventRegistration")).
		Run(func(args mock.Arguments) { created = args.Get(1).(domain.EventRegistration) }).
		Return(nil)

	resp, err := s.service.RegisterForEvent(s.ctx, "event-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.PaymentPending, created.PaymentStatus)
	s.Equal("Registered; payment pending", resp.Message)
}

func (s *EventServiceTestSuite) TestCancelRegistrationNotRegistered() {
	s.eventRepo.On("DeleteRegistration", s.ctx, "event-1", "user-1").Return(apperrors.ErrNotFound)

	err := s.service.CancelRegistration(s.ctx, "event-1", "user-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EventServiceTestSuite) registration(status domain.PaymentStatus) *domain.EventRegistration {
	return &domain.EventRegistration{
		RegistrationID: "reg-1",
		EventID:        "event-1",
		UserID:         "user-1",
		TicketCode:     "TKT-20260801120000-ABCDEFGHIJ",
		PaymentStatus:  status,
	}
}

func (s *EventServiceTestSuite) TestPaymentIntentRejectsFreeEvent() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.freeEvent(), nil)

	_, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestPaymentIntentRequiresRegistration() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestPaymentIntentRejectsAlreadyPaid() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentPaid), nil)

	_, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestPaymentIntentRecordsPendingTransaction() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentPending), nil)

	var txn domain.EventTransaction
	s.eventRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.EventTransaction")).
		Run(func(args mock.Arguments) { txn = args.Get(1).(domain.EventTransaction) }).
		Return(nil)

	resp, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "")

	s.Require().NoError(err)
	s.Equal("pi_test_123_secret", resp.ClientSecret)
	s.True(resp.Amount.Equal(decimal.RequireFromString("10.00")))
	s.Equal("pi_test_123", txn.ProviderIntentID)
	s.Equal(domain.TransactionPending, txn.Status)
	s.Equal("reg-1", txn.RegistrationID)
	s.True(s.provider.lastAmount.Equal(decimal.RequireFromString("10.00")))
}

func (s *EventServiceTestSuite) TestPaymentIntentUppercasesDiscountCodeAndConsumesIt() {
	maxUses := 10
	code := &domain.DiscountCode{
		DiscountID:    "disc-1",
		EventID:       "event-1",
		Code:          "EARLY10",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		MaxUses:       &maxUses,
	}
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentPending), nil)
	s.eventRepo.On("FindDiscountCode", s.ctx, "event-1", "EARLY10").Return(code, nil)
	s.eventRepo.On("ConsumeDiscountCode", s.ctx, "event-1", "EARLY10").Return(nil)
	s.eventRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.EventTransaction")).Return(nil)

	resp, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", " early10 ")

	s.Require().NoError(err)
	s.True(resp.Amount.Equal(decimal.RequireFromString("9.00")))
	s.eventRepo.AssertCalled(s.T(), "ConsumeDiscountCode", s.ctx, "event-1", "EARLY10")
}

func (s *EventServiceTestSuite) TestPaymentIntentStopsWhenConsumptionHitsCap() {
	code := &domain.DiscountCode{
		DiscountID:    "disc-1",
		EventID:       "event-1",
		Code:          "EARLY10",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
	}
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentPending), nil)
	s.eventRepo.On("FindDiscountCode", s.ctx, "event-1", "EARLY10").Return(code, nil)
	// Another intent consumed the last use between lookup and consumption.
	s.eventRepo.On("ConsumeDiscountCode", s.ctx, "event-1", "EARLY10").Return(apperrors.ErrValidation)

	_, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "EARLY10")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.eventRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *EventServiceTestSuite) TestPaymentIntentFullDiscountSkipsProvider() {
	code := &domain.DiscountCode{
		DiscountID:    "disc-1",
		EventID:       "event-1",
		Code:          "FREE100",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(100),
	}
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentPending), nil)
	s.eventRepo.On("FindDiscountCode", s.ctx, "event-1", "FREE100").Return(code, nil)
	s.eventRepo.On("ConsumeDiscountCode", s.ctx, "event-1", "FREE100").Return(nil)
	s.eventRepo.On("MarkRegistrationPaid", s.ctx, "reg-1", decimal.Zero).Return(nil)

	resp, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "FREE100")

	s.Require().NoError(err)
	s.Empty(resp.ClientSecret)
	s.True(resp.Amount.IsZero())
	s.eventRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
	s.True(s.provider.lastAmount.IsZero())
}

func (s *EventServiceTestSuite) TestPaymentIntentWithoutConfiguredProvider() {
	s.service = services.NewEventService(
		s.eventRepo, s.channelRepo, s.userRepo, s.authorizer,
		nil, &utils.PosthogClientWrapper{},
	)
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentPending), nil)

	_, err := s.service.CreatePaymentIntent(s.ctx, "event-1", "user-1", "")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestCreateDiscountCodeUppercasesAndValidates() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "admin-1", "channel-1").Return(nil)

	var saved domain.DiscountCode
	s.eventRepo.On("SaveDiscountCode", s.ctx, mock.AnythingOfType("domain.DiscountCode")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.DiscountCode) }).
		Return(nil)

	resp, err := s.service.CreateDiscountCode(s.ctx, "event-1", "admin-1", dto.CreateDiscountRequest{
		Code:          " early10 ",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(10),
	})

	s.Require().NoError(err)
	s.Equal("EARLY10", saved.Code)
	s.Equal("EARLY10", resp.Code)
}

func (s *EventServiceTestSuite) TestCreateDiscountCodePercentageOverHundred() {
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "admin-1", "channel-1").Return(nil)

	_, err := s.service.CreateDiscountCode(s.ctx, "event-1", "admin-1", dto.CreateDiscountRequest{
		Code:          "TOOBIG",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(150),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestApplyDiscountCodeIsAPurePreview() {
	code := &domain.DiscountCode{
		DiscountID:    "disc-1",
		EventID:       "event-1",
		Code:          "FIXED50",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: decimal.NewFromInt(50),
	}
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindDiscountCode", s.ctx, "event-1", "FIXED50").Return(code, nil)

	resp, err := s.service.ApplyDiscountCode(s.ctx, "event-1", "fixed50")

	s.Require().NoError(err)
	// A fixed discount larger than the price clamps to zero.
	s.True(resp.FinalPrice.IsZero())
	s.True(resp.OriginalPrice.Equal(decimal.RequireFromString("10.00")))
	s.eventRepo.AssertNotCalled(s.T(), "ConsumeDiscountCode", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EventServiceTestSuite) TestApplyDiscountCodeExpired() {
	past := time.Now().UTC().Add(-time.Hour)
	code := &domain.DiscountCode{
		DiscountID:    "disc-1",
		EventID:       "event-1",
		Code:          "OLD",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: decimal.NewFromInt(1),
		ValidUntil:    &past,
	}
	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.paidEvent("10.00"), nil)
	s.eventRepo.On("FindDiscountCode", s.ctx, "event-1", "OLD").Return(code, nil)

	_, err := s.service.ApplyDiscountCode(s.ctx, "event-1", "OLD")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestGetEventStatsClampsAvailableSpots() {
	event := s.paidEvent("10.00")
	capacity := 20
	event.MaxAttendees = &capacity

	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(event, nil)
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "admin-1", "channel-1").Return(nil)
	s.eventRepo.On("CountRegistrations", s.ctx, "event-1").Return(23, nil)
	s.eventRepo.On("CountRegistrationsByStatus", s.ctx, "event-1", domain.PaymentPaid).Return(15, nil)
	s.eventRepo.On("CountRegistrationsByStatus", s.ctx, "event-1", domain.PaymentPending).Return(8, nil)
	s.eventRepo.On("SumCompletedTransactions", s.ctx, "event-1").
		Return(decimal.RequireFromString("150.00"), nil)

	stats, err := s.service.GetEventStats(s.ctx, "event-1", "admin-1")

	s.Require().NoError(err)
	s.Equal(23, stats.RegisteredCount)
	s.Equal(15, stats.PaidCount)
	s.True(stats.TotalRevenue.Equal(decimal.RequireFromString("150.00")))
	s.Require().NotNil(stats.AvailableSpots)
	s.Equal(0, *stats.AvailableSpots)
}

func (s *EventServiceTestSuite) TestGetTicketRequiresRegistration() {
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetTicket(s.ctx, "event-1", "user-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EventServiceTestSuite) TestGetTicketEmbedsQRCode() {
	s.eventRepo.On("FindRegistration", s.ctx, "event-1", "user-1").
		Return(s.registration(domain.PaymentNotRequired), nil)

	ticket, err := s.service.GetTicket(s.ctx, "event-1", "user-1")

	s.Require().NoError(err)
	s.Equal("TKT-20260801120000-ABCDEFGHIJ", ticket.TicketCode)
	s.NotEmpty(ticket.QRCodePNG)
}

func (s *EventServiceTestSuite) TestCheckInRejectsTicketFromAnotherEvent() {
	reg := s.registration(domain.PaymentNotRequired)
	reg.EventID = "event-other"

	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.freeEvent(), nil)
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "admin-1", "channel-1").Return(nil)
	s.eventRepo.On("FindRegistrationByTicket", s.ctx, reg.TicketCode).Return(reg, nil)

	_, err := s.service.CheckInTicket(s.ctx, "event-1", "admin-1", reg.TicketCode)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.eventRepo.AssertNotCalled(s.T(), "MarkCheckedIn", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EventServiceTestSuite) TestCheckInIsSingleUse() {
	reg := s.registration(domain.PaymentNotRequired)

	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.freeEvent(), nil)
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "admin-1", "channel-1").Return(nil)
	s.eventRepo.On("FindRegistrationByTicket", s.ctx, reg.TicketCode).Return(reg, nil)
	s.eventRepo.On("MarkCheckedIn", s.ctx, "reg-1", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrValidation)

	_, err := s.service.CheckInTicket(s.ctx, "event-1", "admin-1", reg.TicketCode)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestCheckInMarksTicketUsed() {
	reg := s.registration(domain.PaymentNotRequired)

	s.eventRepo.On("FindEventByID", s.ctx, "event-1").Return(s.freeEvent(), nil)
	s.authorizer.On("AuthorizeChannelAdmin", s.ctx, "admin-1", "channel-1").Return(nil)
	s.eventRepo.On("FindRegistrationByTicket", s.ctx, reg.TicketCode).Return(reg, nil)
	s.eventRepo.On("MarkCheckedIn", s.ctx, "reg-1", mock.AnythingOfType("time.Time")).Return(nil)
	s.userRepo.On("FindUserByID", s.ctx, "user-1").
		Return(&domain.User{UserID: "user-1", Username: "member", Name: "Member One"}, nil)

	resp, err := s.service.CheckInTicket(s.ctx, "event-1", "admin-1", reg.TicketCode)

	s.Require().NoError(err)
	s.True(resp.CheckedIn)
	s.Require().NotNil(resp.User)
	s.Equal("member", resp.User.Username)
}

func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

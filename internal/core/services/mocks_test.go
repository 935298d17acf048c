package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/platform/notify"
	"github.com/parishlife/parish_community_app/internal/platform/payments"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationRepository = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) IsUserInOrganization(ctx context.Context, userID, organizationID string) (bool, error) {
	args := m.Called(ctx, userID, organizationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

// --- Mock RegistrationRepository ---

type MockRegistrationRepository struct {
	mock.Mock
}

var _ portsrepo.RegistrationRepository = (*MockRegistrationRepository)(nil)

func (m *MockRegistrationRepository) SaveRegistrationSession(ctx context.Context, session domain.RegistrationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockRegistrationRepository) FindActiveSession(ctx context.Context, registrationID string) (*domain.RegistrationSession, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationSession), args.Error(1)
}

func (m *MockRegistrationRepository) UpdateSessionState(ctx context.Context, session domain.RegistrationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// --- Mock OTPRepository ---

type MockOTPRepository struct {
	mock.Mock
}

var _ portsrepo.OTPRepository = (*MockOTPRepository)(nil)

func (m *MockOTPRepository) SaveOTP(ctx context.Context, otp domain.OTPCode) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindUsableOTP(ctx context.Context, email, code string, purpose domain.OTPPurpose) (*domain.OTPCode, error) {
	args := m.Called(ctx, email, code, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OTPCode), args.Error(1)
}

func (m *MockOTPRepository) MarkOTPUsed(ctx context.Context, otpID string, usedAt time.Time) error {
	args := m.Called(ctx, otpID, usedAt)
	return args.Error(0)
}

// --- Mock RefreshTokenRepository ---

type MockRefreshTokenRepository struct {
	mock.Mock
}

var _ portsrepo.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) RevokeRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) TouchLastUsed(ctx context.Context, tokenID string, at time.Time) error {
	args := m.Called(ctx, tokenID, at)
	return args.Error(0)
}

// --- Mock ChannelRepository ---

type MockChannelRepository struct {
	mock.Mock
}

var _ portsrepo.ChannelRepository = (*MockChannelRepository)(nil)

func (m *MockChannelRepository) SaveChannel(ctx context.Context, channel domain.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockChannelRepository) FindChannelByID(ctx context.Context, channelID string) (*domain.Channel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *MockChannelRepository) ListSubscribedChannels(ctx context.Context, userID string, limit, offset int) ([]domain.Channel, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Channel), args.Error(1)
}

func (m *MockChannelRepository) AddMember(ctx context.Context, member domain.ChannelMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockChannelRepository) IsUserAdmin(ctx context.Context, userID, channelID string) (bool, error) {
	args := m.Called(ctx, userID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChannelRepository) Subscribe(ctx context.Context, sub domain.ChannelSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockChannelRepository) Unsubscribe(ctx context.Context, channelID, userID string) error {
	args := m.Called(ctx, channelID, userID)
	return args.Error(0)
}

func (m *MockChannelRepository) IsSubscribed(ctx context.Context, channelID, userID string) (bool, error) {
	args := m.Called(ctx, channelID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

var _ portsrepo.EventRepository = (*MockEventRepository)(nil)

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsForUser(ctx context.Context, userID string, filter portsrepo.EventFeedFilter) ([]domain.Event, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Event), args.Int(1), args.Error(2)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *MockEventRepository) CreateRegistration(ctx context.Context, reg domain.EventRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteRegistration(ctx context.Context, eventID, userID string) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockEventRepository) FindRegistration(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventRegistration), args.Error(1)
}

func (m *MockEventRepository) FindRegistrationByTicket(ctx context.Context, ticketCode string) (*domain.EventRegistration, error) {
	args := m.Called(ctx, ticketCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventRegistration), args.Error(1)
}

func (m *MockEventRepository) ListRegistrations(ctx context.Context, eventID string, page, pageSize int) ([]domain.EventRegistration, int, error) {
	args := m.Called(ctx, eventID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EventRegistration), args.Int(1), args.Error(2)
}

func (m *MockEventRepository) CountRegistrations(ctx context.Context, eventID string) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) CountRegistrationsByStatus(ctx context.Context, eventID string, status domain.PaymentStatus) (int, error) {
	args := m.Called(ctx, eventID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) MarkRegistrationPaid(ctx context.Context, registrationID string, amount decimal.Decimal) error {
	args := m.Called(ctx, registrationID, amount)
	return args.Error(0)
}

func (m *MockEventRepository) MarkCheckedIn(ctx context.Context, registrationID string, at time.Time) error {
	args := m.Called(ctx, registrationID, at)
	return args.Error(0)
}

func (m *MockEventRepository) SaveDiscountCode(ctx context.Context, code domain.DiscountCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockEventRepository) FindDiscountCode(ctx context.Context, eventID, code string) (*domain.DiscountCode, error) {
	args := m.Called(ctx, eventID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountCode), args.Error(1)
}

func (m *MockEventRepository) ConsumeDiscountCode(ctx context.Context, eventID, code string) error {
	args := m.Called(ctx, eventID, code)
	return args.Error(0)
}

func (m *MockEventRepository) SaveTransaction(ctx context.Context, txn domain.EventTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.EventTransaction, error) {
	args := m.Called(ctx, transactionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventTransaction), args.Error(1)
}

func (m *MockEventRepository) SumCompletedTransactions(ctx context.Context, eventID string) (decimal.Decimal, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEventRepository) SaveAlert(ctx context.Context, alert domain.EventAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockEventRepository) ListAlerts(ctx context.Context, eventID string, page, pageSize int) ([]domain.EventAlert, int, error) {
	args := m.Called(ctx, eventID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EventAlert), args.Int(1), args.Error(2)
}

// --- Mock TokenSvcFacade ---

type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockTokenService) RotateRefreshToken(ctx context.Context, rawRefreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, rawRefreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockTokenService) RevokeAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTokenService) VerifyAccessToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

// --- Mock ChannelAuthorizerSvc ---

type MockChannelAuthorizer struct {
	mock.Mock
}

var _ portssvc.ChannelAuthorizerSvc = (*MockChannelAuthorizer)(nil)

func (m *MockChannelAuthorizer) AuthorizeChannelAdmin(ctx context.Context, userID, channelID string) error {
	args := m.Called(ctx, userID, channelID)
	return args.Error(0)
}

// --- Recording notification senders ---

type recordingEmailSender struct {
	otpCodes   []string
	welcomes   []string
	resetCodes []string
}

var _ notify.EmailSender = (*recordingEmailSender)(nil)

func (s *recordingEmailSender) SendOTPEmail(ctx context.Context, to, code, flow string) notify.DeliveryResult {
	s.otpCodes = append(s.otpCodes, code)
	return notify.DeliveryResult{Outcome: notify.DeliveryOK}
}

func (s *recordingEmailSender) SendWelcomeEmail(ctx context.Context, to, username string) notify.DeliveryResult {
	s.welcomes = append(s.welcomes, to)
	return notify.DeliveryResult{Outcome: notify.DeliveryOK}
}

func (s *recordingEmailSender) SendPasswordResetEmail(ctx context.Context, to, code string) notify.DeliveryResult {
	s.resetCodes = append(s.resetCodes, code)
	return notify.DeliveryResult{Outcome: notify.DeliveryOK}
}

type recordingSMSSender struct {
	codes []string
}

var _ notify.SMSSender = (*recordingSMSSender)(nil)

func (s *recordingSMSSender) SendOTPSMS(ctx context.Context, phone, code string) notify.DeliveryResult {
	s.codes = append(s.codes, code)
	return notify.DeliveryResult{Outcome: notify.DeliveryOK}
}

// --- Stub payment provider ---

type stubPaymentProvider struct {
	lastAmount   decimal.Decimal
	lastCurrency string
	err          error
}

var _ payments.Provider = (*stubPaymentProvider)(nil)

func (p *stubPaymentProvider) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*payments.PaymentIntent, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.lastAmount = amount
	p.lastCurrency = currency
	return &payments.PaymentIntent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret"}, nil
}

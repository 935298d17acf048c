package services

import (
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/platform/config"
	"github.com/parishlife/parish_community_app/internal/platform/notify"
	"github.com/parishlife/parish_community_app/internal/platform/payments"
	"github.com/parishlife/parish_community_app/internal/utils"
)

// NewServiceContainer builds the full service graph from repositories and
// platform dependencies.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	cfg *config.Config,
	email notify.EmailSender,
	sms notify.SMSSender,
	paymentProvider payments.Provider,
	analytics *utils.PosthogClientWrapper,
) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(repos.RefreshTokenRepo, cfg)
	channelSvc := NewChannelService(repos.ChannelRepo)

	return &portssvc.ServiceContainer{
		Auth: NewAuthService(
			repos.UserRepo,
			repos.OrganizationRepo,
			repos.RegistrationRepo,
			repos.OTPRepo,
			tokenSvc,
			email,
			sms,
			analytics,
			cfg,
		),
		Token:   tokenSvc,
		User:    NewUserService(repos.UserRepo),
		Channel: channelSvc,
		Event: NewEventService(
			repos.EventRepo,
			repos.ChannelRepo,
			repos.UserRepo,
			channelSvc,
			paymentProvider,
			analytics,
		),
	}
}

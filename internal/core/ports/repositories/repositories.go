package repositories

// RepositoryProvider bundles all repositories for injection into the
// service container.
type RepositoryProvider struct {
	UserRepo         UserRepository
	OrganizationRepo OrganizationRepository
	RegistrationRepo RegistrationRepository
	OTPRepo          OTPRepository
	RefreshTokenRepo RefreshTokenRepository
	ChannelRepo      ChannelRepository
	EventRepo        EventRepository
}

package services

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	Auth    AuthSvcFacade
	Token   TokenSvcFacade
	User    UserSvcFacade
	Channel ChannelSvcFacade
	Event   EventSvcFacade
}

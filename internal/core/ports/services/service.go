package services

// ServiceContainer holds instances of all the application services. It is
// the single entry point handlers use to reach service functionality.
type ServiceContainer struct {
	User        UserSvcFacade
	Todo        TodoSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}

package services

import (
	portsrepo "github.com/mohanapra/personal-diary-web-app/internal/core/ports/repositories"
	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
	"github.com/mohanapra/personal-diary-web-app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Entry = NewEntryService(repos.EntryRepo)
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

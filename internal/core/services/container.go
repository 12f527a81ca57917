package services

import (
	"log/slog"

	portsrepo "github.com/karales/todo_backend/internal/core/ports/repositories"
	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/platform/config"
)

// NewServiceContainer wires all application services against the repository
// provider. storage may be nil when object storage is not configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, storage portsrepo.ObjectStorage, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo, storage, cfg.DefaultProfilePicture, logger),
		Todo:        NewTodoService(repos.TodoRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}

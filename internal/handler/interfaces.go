package handler

import (
	"context"

	"github.com/sakif/snack-api/internal/auth"
	"github.com/sakif/snack-api/internal/model"
	"github.com/sakif/snack-api/internal/service"
)

// The handlers depend on these interfaces rather than on *service.X, so
// tests can drive them with gomock mocks from ./mocks.

//go:generate mockgen -source=interfaces.go -destination=mocks/services_mock.go -package=mocks

// SnackService is implemented by *service.SnackService.
type SnackService interface {
	List(ctx context.Context) ([]model.Snack, error)
	Get(ctx context.Context, id int64) (*model.Snack, error)
	Create(ctx context.Context, title, body string, authorID int64) (*model.Snack, error)
	Update(ctx context.Context, id int64, title, body string, authorID int64) (*model.Snack, error)
	Delete(ctx context.Context, id int64) error
}

// AccountService is implemented by *service.AccountService.
type AccountService interface {
	Register(ctx context.Context, username, password string) (*model.Principal, error)
	Get(ctx context.Context, id int64) (*model.Principal, error)
	Login(ctx context.Context, username, password string) (*service.AuthResult, error)
	ChangeCredential(ctx context.Context, id int64, password string) error
	SignInGitHub(ctx context.Context, ghUser *auth.GitHubUser) (*service.AuthResult, error)
}

// GitHubAuthenticator is implemented by *auth.GitHubProvider.
type GitHubAuthenticator interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.GitHubUser, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

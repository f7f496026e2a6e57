// Package repository declares the storage contracts the service layer
// depends on. internal/repository/sqlite provides the implementation.
package repository

import (
	"context"

	"github.com/sakif/snack-api/internal/model"
)

// PrincipalRepository stores accounts.
// Create returns apperror.ErrDuplicateKey when the username is taken;
// lookups return apperror.ErrNotFound.
type PrincipalRepository interface {
	CreatePrincipal(ctx context.Context, p *model.Principal) error
	GetPrincipalByID(ctx context.Context, id int64) (*model.Principal, error)
	GetPrincipalByUsername(ctx context.Context, username string) (*model.Principal, error)
	UpdateCredential(ctx context.Context, id int64, credential string) error
}

// SnackRepository stores snacks. List is ordered by id ascending.
type SnackRepository interface {
	CreateSnack(ctx context.Context, s *model.Snack) error
	GetSnack(ctx context.Context, id int64) (*model.Snack, error)
	ListSnacks(ctx context.Context) ([]model.Snack, error)
	UpdateSnack(ctx context.Context, s *model.Snack) error
	DeleteSnack(ctx context.Context, id int64) error
}

package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	// EnsureUser returns the user named username, creating it with
	// DefaultRole when missing.
	EnsureUser(ctx context.Context, username string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role auth.Role) error
	CountByRole(ctx context.Context, role auth.Role) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ensureParams struct {
	Username string `json:"username" validate:"required,max=150"`
}

type RoleParams struct {
	Role auth.Role `json:"role" validate:"required,oneof=admin accountant project_manager"`
}

// Ensure returns the named user, registering it as a project manager the
// first time it is seen.
func (s *Service) Ensure(ctx context.Context, username string) (*User, error) {
	p := ensureParams{Username: strings.TrimSpace(username)}
	if err := validate.Struct(&p); err != nil {
		return nil, err
	}

	return s.repo.EnsureUser(ctx, p.Username)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

// SetRole changes a user's role. The last admin cannot be demoted.
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, params RoleParams) (*User, error) {
	if err := validate.Struct(&params); err != nil {
		return nil, err
	}

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.Role == params.Role {
		return u, nil
	}

	if u.Role == auth.RoleAdmin {
		admins, err := s.repo.CountByRole(ctx, auth.RoleAdmin)
		if err != nil {
			return nil, err
		}

		if admins <= 1 {
			return nil, ErrLastAdmin
		}
	}

	if err := s.repo.UpdateRole(ctx, id, params.Role); err != nil {
		return nil, err
	}

	u.Role = params.Role

	return u, nil
}

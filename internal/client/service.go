package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	// LoadClient returns the profile, creating it with defaults when missing.
	LoadClient(ctx context.Context) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	UpdateLogo(ctx context.Context, key string) error
}

type LogoStore interface {
	PutLogo(ctx context.Context, key, contentType string, data []byte) error
}

type Service struct {
	repo  Repository
	logos LogoStore
}

func NewService(repo Repository, logos LogoStore) *Service {
	return &Service{repo: repo, logos: logos}
}

type Params struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Address     string `json:"address"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
}

// Load reads the profile from the store on every call.
func (s *Service) Load(ctx context.Context) (*Client, error) {
	return s.repo.LoadClient(ctx)
}

func (s *Service) Update(ctx context.Context, params Params) (*Client, error) {
	params.CompanyName = strings.TrimSpace(params.CompanyName)
	params.Address = strings.TrimSpace(params.Address)
	params.Email = strings.TrimSpace(params.Email)
	params.PhoneNumber = strings.TrimSpace(params.PhoneNumber)

	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	c, err := s.repo.LoadClient(ctx)
	if err != nil {
		return nil, err
	}

	c.CompanyName = params.CompanyName
	c.Address = params.Address
	c.Email = params.Email
	c.PhoneNumber = params.PhoneNumber

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) SetLogo(ctx context.Context, contentType string, data []byte) (string, error) {
	if _, err := s.repo.LoadClient(ctx); err != nil {
		return "", err
	}

	key := "client/" + uuid.NewString()
	if err := s.logos.PutLogo(ctx, key, contentType, data); err != nil {
		return "", fmt.Errorf("storing logo: %w", err)
	}

	if err := s.repo.UpdateLogo(ctx, key); err != nil {
		return "", err
	}

	return key, nil
}

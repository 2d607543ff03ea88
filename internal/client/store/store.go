package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/backoffice/internal/client"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadClient inserts the default row if the table is empty and reads it back.
func (s *Store) LoadClient(ctx context.Context) (*client.Client, error) {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO client_profile (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
	); err != nil {
		return nil, fmt.Errorf("ensuring client profile: %w", err)
	}

	query := `
		SELECT company_name, logo_key, address, email, phone_number, updated_at
		FROM client_profile
		WHERE id = 1
	`

	var (
		c     client.Client
		email sql.NullString
	)

	if err := s.db.QueryRowContext(ctx, query).Scan(
		&c.CompanyName, &c.LogoKey, &c.Address, &email, &c.PhoneNumber, &c.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("loading client profile: %w", err)
	}

	c.Email = email.String

	return &c, nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE client_profile
		SET company_name = $1, address = $2, email = NULLIF($3, ''), phone_number = $4, updated_at = NOW()
		WHERE id = 1
		RETURNING updated_at
	`

	if err := s.db.QueryRowContext(ctx, query,
		c.CompanyName, c.Address, c.Email, c.PhoneNumber,
	).Scan(&c.UpdatedAt); err != nil {
		return fmt.Errorf("updating client profile: %w", err)
	}

	return nil
}

func (s *Store) UpdateLogo(ctx context.Context, key string) error {
	query := `UPDATE client_profile SET logo_key = $1, updated_at = NOW() WHERE id = 1`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("updating client logo: %w", err)
	}

	return nil
}

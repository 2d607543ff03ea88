// Package user keeps the role each API user acts with.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrLastAdmin is returned when a role change would leave no admin.
	ErrLastAdmin = errors.New("cannot demote the last admin")
)

// DefaultRole is given to users on first sight.
const DefaultRole = auth.RoleProjectManager

type User struct {
	ID        uuid.UUID
	Username  string
	Role      auth.Role
	CreatedAt time.Time
	UpdatedAt *time.Time
}

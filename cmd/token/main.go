// Command token mints API bearer tokens signed with JWT_SECRET. The role in
// the token is the one stored for the user.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/database"
	"github.com/MrJamesThe3rd/backoffice/internal/user"
	userStore "github.com/MrJamesThe3rd/backoffice/internal/user/store"
)

func main() {
	if err := newRootCmd(openUsers).Execute(); err != nil {
		os.Exit(1)
	}
}

type usersOpener func(ctx context.Context, cfg *config.Config) (*user.Service, io.Closer, error)

func openUsers(ctx context.Context, cfg *config.Config) (*user.Service, io.Closer, error) {
	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrating database: %w", err)
	}

	return user.NewService(userStore.New(db)), db, nil
}

func newRootCmd(open usersOpener) *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <username>",
		Short: "Issue an API token for a user",
		Long: "Issue an API token for a user. Unknown users are registered as project managers.\n" +
			"Pass --role to store a new role for the user before issuing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setRole := cmd.Flags().Changed("role")
			if setRole && !auth.Role(role).Valid() {
				return fmt.Errorf("%w: %q", auth.ErrUnknownRole, role)
			}

			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cfg.Auth.JWTSecret == "" {
				return errors.New("JWT_SECRET must be set")
			}

			if ttl == 0 {
				ttl = cfg.Auth.TokenTTL
			}

			ctx := cmd.Context()

			users, closer, err := open(ctx, cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			u, err := users.Ensure(ctx, args[0])
			if err != nil {
				return err
			}

			if setRole {
				if u, err = users.SetRole(ctx, u.ID, user.RoleParams{Role: auth.Role(role)}); err != nil {
					return err
				}
			}

			token, err := auth.NewIssuer(cfg.Auth.JWTSecret, ttl).Issue(u.Username, u.Role)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "store this role for the user first: admin, accountant or project_manager")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to TOKEN_TTL)")

	return cmd
}

package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfassih/praxis_backend/config"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
	"github.com/alfassih/praxis_backend/pkg/authorize"
	"github.com/alfassih/praxis_backend/pkg/database"
	"github.com/alfassih/praxis_backend/pkg/util/password"
)

// NewSeedCommand creates the first admin account so a fresh deployment
// can be logged into. Running it twice is harmless.
func NewSeedCommand() *cobra.Command {
	var (
		adminEmail    string
		adminPassword string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			ctx := cmd.Context()

			// Login matches the stored email lowercased; store it the
			// same way or a mixed-case seed can never sign in.
			adminEmail = normalizeEmail(adminEmail)

			exists, err := client.User.Query().Where(entuser.EmailEQ(adminEmail)).Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check admin account: %w", err)
			}
			if exists {
				fmt.Printf("Admin account %s already exists, nothing to do.\n", adminEmail)
				return nil
			}

			hash, err := password.HashWithParams(adminPassword, password.ParamsFromCentralConfig(cfg.Password))
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}

			u, err := client.User.Create().
				SetEmail(adminEmail).
				SetPasswordHash(hash).
				SetRole(entuser.RoleAdmin).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create admin account: %w", err)
			}

			if err := authorize.AssignAccountRole(ctx, auth, u.ID.String(), string(entuser.RoleAdmin)); err != nil {
				return fmt.Errorf("failed to grant admin role: %w", err)
			}

			fmt.Printf("Admin account %s created.\n", adminEmail)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "admin-email", "admin@example.com", "email for the initial admin account")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "password for the initial admin account (required)")
	_ = cmd.MarkFlagRequired("admin-password")

	return cmd
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

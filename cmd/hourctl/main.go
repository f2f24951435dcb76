package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/server"
	"github.com/Theo3883/Hour-Tracking-Application/internal/version"
	applogger "github.com/Theo3883/Hour-Tracking-Application/pkg/logger"
)

// hourctl is the operator CLI: one-off admin tasks that do not belong in the
// HTTP surface, run directly against the database.

func main() {
	root := &cobra.Command{
		Use:           "hourctl",
		Short:         "Operator tooling for the hour-tracking service",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPromoteAdminCmd())
	root.AddCommand(newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withServices connects to the database and hands a ready service container
// to the command body.
func withServices(fn func(ctx context.Context, cfg *config.Config, services *server.Services) error) error {
	_ = godotenv.Load()
	cfg := config.New()

	logger, err := applogger.New(cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	client, err := server.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.Mongo.Database)
	repos := server.InitRepositories(client, db)
	services := server.InitServices(cfg, repos, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return fn(ctx, cfg, services)
}

func newPromoteAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote-admin <email>",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(func(ctx context.Context, _ *config.Config, services *server.Services) error {
				user, err := services.Identity.PromoteToAdmin(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s %s (%s) is now an admin\n", user.FirstName, user.LastName, user.Email)
				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the fallback department and unique indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg := config.New()

			logger, err := applogger.New(cfg.Server.Env)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync()

			client, err := server.Connect(cfg)
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(ctx)
			}()

			db := client.Database(cfg.Mongo.Database)
			repos := server.InitRepositories(client, db)
			if err := server.PopulateInitialData(cfg, db, repos, logger); err != nil {
				return err
			}
			fmt.Printf("Fallback department %q is in place\n", cfg.Ledger.FallbackDepartment)
			return nil
		},
	}
}

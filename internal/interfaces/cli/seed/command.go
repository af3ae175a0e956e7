package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/shared/logger"
)

var (
	env           string
	adminEmail    string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data and the initial admin account",
		Long:  `Populate organizations, platforms, and the first admin account. Safe to run repeatedly; existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "Email for the initial admin account (or HELPDESK_SEED_ADMIN_EMAIL)")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the initial admin account (or HELPDESK_SEED_ADMIN_PASSWORD)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := seeds.SeedReferenceData(database.Get()); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}
	log.Infow("reference data seeded")

	if adminEmail == "" {
		adminEmail = os.Getenv("HELPDESK_SEED_ADMIN_EMAIL")
	}
	if adminPassword == "" {
		adminPassword = os.Getenv("HELPDESK_SEED_ADMIN_PASSWORD")
	}

	if adminEmail == "" || adminPassword == "" {
		log.Warnw("skipping admin seed, no credentials provided")
		return nil
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := seeds.SeedDefaultAdmin(database.Get(), hasher, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	log.Infow("admin account seeded", "email", adminEmail)

	return nil
}

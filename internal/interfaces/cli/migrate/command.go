// Package migrate implements the database migration CLI commands.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"caterly/internal/infrastructure/config"
	"caterly/internal/infrastructure/database"
	"caterly/internal/infrastructure/migration"
	"caterly/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including applying, rolling back, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := initMigrator()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := m.Up(); err != nil {
				return err
			}

			logger.Info("migrations applied")
			return nil
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := initMigrator()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := m.Down(steps); err != nil {
				return err
			}

			logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := initMigrator()
			if err != nil {
				return err
			}
			defer database.Close()

			version, dirty, err := m.Version()
			if err != nil {
				return err
			}

			logger.Info("migration status", "version", version, "dirty", dirty)
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := scriptsPath()
			if err != nil {
				return err
			}

			up, down, err := migration.Create(path, name)
			if err != nil {
				return err
			}

			fmt.Println("created:", up)
			fmt.Println("created:", down)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initMigrator() (*migration.Migrator, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	path, err := scriptsPath()
	if err != nil {
		return nil, err
	}

	return migration.NewMigrator(database.Get(), path), nil
}

func scriptsPath() (string, error) {
	path, err := filepath.Abs("./migrations")
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	return path, nil
}

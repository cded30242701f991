package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-extras/cobraflags"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"tech-oh/internal/config"
	"tech-oh/internal/logger"
)

const sourceFlag = "source"

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down|version]",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(migrateSubcommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		return printVersion(cmd, m)
	}))

	cmd.AddCommand(migrateSubcommand(&cobra.Command{
		Use:   "down [N]",
		Short: "Roll back N migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
	}, func(cmd *cobra.Command, m *migrate.Migrate, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		return printVersion(cmd, m)
	}))

	cmd.AddCommand(migrateSubcommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
		return printVersion(cmd, m)
	}))

	return cmd
}

// migrateSubcommand registers the --source flag on cmd and runs fn with an open migrator.
func migrateSubcommand(cmd *cobra.Command, fn func(*cobra.Command, *migrate.Migrate, []string) error) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		sourceFlag: &cobraflags.StringFlag{
			Name:  sourceFlag,
			Value: "",
			Usage: "Migration source URL (defaults to MIGRATIONS_PATH)",
		},
	}
	cobraflags.RegisterMap(cmd, flags)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		source := flags[sourceFlag].GetString()
		if source == "" {
			source = cfg.MigrationsPath
		}

		m, err := migrate.New(source, cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("open migrations: %w", err)
		}
		defer closeMigrate(m)

		return fn(cmd, m, args)
	}
	return cmd
}

// parseSteps reads the optional step count of "migrate down".
func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("N must be a positive integer, got %q", args[0])
	}
	return n, nil
}

func printVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		cmd.Println("no migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	cmd.Printf("version %d (dirty: %t)\n", version, dirty)
	return nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Warn("closing migrations failed", "source_error", srcErr, "database_error", dbErr)
	}
}

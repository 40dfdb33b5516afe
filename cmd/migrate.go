package cmd

import (
	"blog-api/repositories"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE:  migrateCommand,
	}
}

func migrateCommand(_ *cobra.Command, _ []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer shutdown(logger, db)

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	logger.Info("schema migrated")
	return nil
}

package cmd

import (
	"fmt"

	"blog-api/repositories"
	"blog-api/services"

	"github.com/spf13/cobra"
)

func newCleanupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-comments",
		Short: "Delete comments whose article no longer exists",
		Long: `Delete comments whose article no longer exists.

Databases created before comments cascaded with their article may still hold
such comments. The command is safe to run repeatedly.`,
		RunE: cleanupCommand,
	}
}

func cleanupCommand(cmd *cobra.Command, _ []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer shutdown(logger, db)

	commentService := services.NewCommentService(repositories.NewGateway(db), logger)

	deleted, err := commentService.DeleteOrphans(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d orphaned comments\n", deleted)
	return nil
}

package cmd

import (
	"fmt"

	"blog-api/config"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const envFileFlag = "env-file"

var commonFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:       envFileFlag,
		Value:      ".env",
		Usage:      "Optional dotenv file loaded before reading the environment",
		Persistent: true,
	},
}

var rootCmd = &cobra.Command{
	Use:   "blog-api",
	Short: "REST backend for blog articles, tags and comments",
	Long: `REST backend for blog articles, tags and comments.

Without a subcommand the HTTP server is started, same as "blog-api serve".

Examples:
  blog-api                          # serve with settings from .env and the environment
  blog-api migrate                  # create or update the schema and exit
  blog-api cleanup-comments         # delete comments whose article is gone`,
	SilenceUsage: true,
	RunE:         serveCommand,
}

// The flags live on rootCmd only. A cobraflags flag keeps the last flag set it
// was registered with, so subcommands inherit it as a persistent flag.
func init() {
	cobraflags.RegisterMap(rootCmd, commonFlags)
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCleanupCommand())
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads configuration and opens the logger and the database. The
// caller owns both and must release them.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(commonFlags[envFileFlag].GetString())
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("database connected", zap.String("driver", cfg.DBDriver))

	return cfg, logger, db, nil
}

func shutdown(logger *zap.Logger, db *gorm.DB) {
	if err := config.CloseDatabase(db); err != nil {
		logger.Warn("close database", zap.Error(err))
	}
	_ = logger.Sync()
}

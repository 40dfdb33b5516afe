package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"blog-api/config"
	"blog-api/handlers"
	"blog-api/helper"
	"blog-api/repositories"
	"blog-api/router"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE:  serveCommand,
	}
}

// NewEngine wires repositories, services and handlers into a router.
func NewEngine(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gateway := repositories.NewGateway(db)
	httpHelper := helper.NewHTTPHelper(logger)

	var formatter services.Formatter = services.PlainFormatter{}
	if cfg.RenderMarkdown {
		formatter = services.NewMarkdownFormatter()
	}

	articleService := services.NewArticleService(gateway, formatter, logger)
	tagService := services.NewTagService(gateway, logger)
	commentService := services.NewCommentService(gateway, logger)
	healthService := services.NewHealthService(gateway, logger)

	return router.SetupRouter(router.Handlers{
		Article: handlers.NewArticleHandler(articleService, httpHelper),
		Tag:     handlers.NewTagHandler(tagService, httpHelper),
		Comment: handlers.NewCommentHandler(commentService, httpHelper),
		Health:  handlers.NewHealthHandler(healthService, httpHelper),
	}, httpHelper, logger, cfg.FrontendURL)
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer shutdown(logger, db)

	gin.SetMode(cfg.GinMode)

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewEngine(cfg, db, logger),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

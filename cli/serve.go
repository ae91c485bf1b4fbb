/*
serve.go - The "serve" command: web form and JSON API

STARTUP SEQUENCE:
  1. Load config (.env, environment), apply flag overrides, validate
  2. Build the logger
  3. Create handler and router
  4. Run the HTTP server until SIGINT/SIGTERM

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests (SHUTDOWN_TIMEOUT, default 30s)
  3. Exit

EXAMPLES:
  salary serve
  salary serve --port 3000 --splash-delay 0s
  PORT=9090 LOG_FORMAT=json salary serve

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment variables
*/
package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/warp/salary-engine/api"
	"github.com/warp/salary-engine/config"
	"github.com/warp/salary-engine/logging"
)

type serveFlags struct {
	port        int
	splashDelay time.Duration
}

// NewServeCommand creates the "serve" command.
func NewServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the salary form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			applyServeFlags(cfg, flags, cmd)
			if err := cfg.Validate(); err != nil {
				return &CLIError{Code: ExitGeneralError, Message: "invalid configuration", Err: err}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&flags.port, "port", config.DefaultPort, "HTTP server port (overrides PORT)")
	cmd.Flags().DurationVar(&flags.splashDelay, "splash-delay", config.DefaultSplashDelay, "Splash screen duration (overrides SPLASH_DELAY)")

	return cmd
}

func applyServeFlags(cfg *config.Config, flags *serveFlags, cmd *cobra.Command) {
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.port
	}
	if cmd.Flags().Changed("splash-delay") {
		cfg.SplashDelay = flags.splashDelay
	}
}

// runServer blocks until ctx is cancelled or the listener fails.
func runServer(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(logging.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Component: "api",
	})

	handler := api.NewHandler(logger, cfg.SplashDelay)
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(handler, cfg.CORSAllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

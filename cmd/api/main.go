package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/launchrecords/launchdash/internal/app"
	"github.com/launchrecords/launchdash/internal/appconf"
	"github.com/launchrecords/launchdash/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := appconf.Load()
	if err != nil {
		logging.LogError(slog.Default(), "invalid configuration", err)
		os.Exit(1)
	}

	if err := parseFlags(flag.CommandLine, os.Args[1:], &cfg); err != nil {
		logging.LogError(slog.Default(), "invalid command-line flags", err)
		os.Exit(2)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// parseFlags lets command-line flags override the environment. Every flag
// defaults to the value already loaded.
func parseFlags(fs *flag.FlagSet, args []string, cfg *appconf.Config) error {
	fs.StringVar(&cfg.Host, "host", cfg.Host, "HTTP listen host")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.EnvName, "env", cfg.EnvName, "Environment (development|test|production)")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Launch data file (.csv or .sqlite)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(cfg.EnvName)
	return nil
}

func newLogger(cfg appconf.Config) *slog.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Env == appconf.Development {
		return logging.NewTextLogger(os.Stdout, level)
	}
	return logging.NewStructuredLogger(os.Stdout, level)
}

// run loads the dataset and serves until ctx is cancelled or the process
// receives SIGINT or SIGTERM.
func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}

	application, err := app.Load(ctx, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      routes(application),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "addr", srv.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	defer logging.HandleDeferredError(&err, func() error {
		return srv.Shutdown(shutdownCtx)
	}, logger, "server_shutdown")

	return nil
}

// Command reception relays contact form submissions by email.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ELQUIA-Mainnki/reception/config"
	"github.com/ELQUIA-Mainnki/reception/emails"
	"github.com/ELQUIA-Mainnki/reception/handlers"
	"github.com/ELQUIA-Mainnki/reception/internal"
	"github.com/ELQUIA-Mainnki/reception/middlewares"
	"github.com/ELQUIA-Mainnki/reception/pkg/logger"
	"github.com/ELQUIA-Mainnki/reception/pkg/mailer"
	"github.com/ELQUIA-Mainnki/reception/pkg/mailer/resend"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor()).With("component", "reception")

	app, err := newApp(cfg, log)
	if err != nil {
		log.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(cfg.Address,
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.ShutdownHook(func(context.Context) error {
			logger.Flush(sentryFlushTimeout)
			return nil
		}),
	); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newApp wires the submit endpoint, middleware and health probes.
func newApp(cfg *config.Config, log *slog.Logger) (*internal.App, error) {
	sender, err := resend.New(cfg.Resend)
	if err != nil {
		return nil, err
	}

	m := mailer.New(sender, emails.NewRenderer(), cfg.Mail)

	return internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("resend", resend.Healthcheck(sender)),
		),
		internal.WithHandlers(handlers.NewSubmit(m, handlers.SubmitConfig{
			Path:   cfg.FormPath,
			To:     cfg.ToEmail,
			Strict: cfg.Strict,
		})),
	), nil
}

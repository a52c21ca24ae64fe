// Command notifier consumes domain events from RabbitMQ and sends the matching emails.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/recruitment/internal/bootstrap"
	"github.com/yigit/recruitment/internal/notifier"
	"github.com/yigit/recruitment/internal/pkg/email"
	"github.com/yigit/recruitment/internal/pkg/events"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize notifier")
		os.Exit(1)
	}

	if !cfg.RabbitMQ.Enabled {
		lgr.Warn().Msg("RabbitMQ is disabled, notifier has nothing to consume")
		return
	}

	mailer := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.Server.BaseURL,
	}, lgr.With().Str("component", "email").Logger())

	dispatcher := notifier.NewDispatcher(mailer, lgr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := events.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, dispatcher.Handle,
		lgr.With().Str("component", "consumer").Logger())

	lgr.Info().Str("queue", cfg.RabbitMQ.Queue).Msg("Notifier started")
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lgr.Error().Err(err).Msg("Notifier stopped with error")
		os.Exit(1)
	}
	lgr.Info().Msg("Notifier stopped")
}

package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/infra/notification"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/mail"
	"room-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewMailSender,
		NewDispatcher,
		func(d *notification.Dispatcher) shared.Notifier { return d },
	),
)

func NewMailSender(cfg config.Config, logger *slog.Logger) mail.Sender {
	if cfg.Mail.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY が未設定のため、通知はログ出力のみになります")
		return mail.NewLogSender(logger)
	}
	return mail.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.From, cfg.Mail.FromName)
}

func NewDispatcher(lc fx.Lifecycle, sender mail.Sender, cfg config.Config, loc *time.Location, logger *slog.Logger) *notification.Dispatcher {
	d := notification.NewDispatcher(sender, cfg.Mail.Concurrency, loc, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Close(ctx)
		},
	})
	return d
}

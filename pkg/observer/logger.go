package observer

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/codevai-team/codev-bot/pkg/webhook"
)

type Logger struct {
	base zerolog.Logger
}

func NewLogger(
	base zerolog.Logger,
) *Logger {
	return &Logger{
		base: base,
	}
}

func (l *Logger) Received(
	ctx context.Context,
	update webhook.InboundUpdate,
	summary webhook.Summary,
) {
	lg := l.logger(ctx)

	lg.Info().
		Int64("update_id", summary.UpdateID).
		Int64("chat_id", summary.ChatID).
		Int64("message_id", summary.MessageID).
		Str("kind", string(summary.Kind)).
		Int("size", len(update)).
		Msg("received update")

	lg.Debug().RawJSON("update", update).Msg("update payload")
}

func (l *Logger) Failed(
	ctx context.Context,
	err error,
) {
	l.logger(ctx).Error().Err(err).Msg("failed to process update")
}

// logger prefers the request-scoped logger attached by the HTTP middleware.
func (l *Logger) logger(ctx context.Context) *zerolog.Logger {
	if lg := zerolog.Ctx(ctx); lg.GetLevel() != zerolog.Disabled {
		return lg
	}

	return &l.base
}

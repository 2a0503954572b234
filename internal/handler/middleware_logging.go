package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/models"
)

func (h *Handlers) withLogging(flow models.Flow, next Conversation) Conversation {
	return func(ctx context.Context, conn channel.PeerConn) error {
		log := logger.FromContext(ctx)

		active := h.metrics.ActiveConversations.WithLabelValues(string(flow))
		active.Inc()
		defer active.Dec()

		start := time.Now()
		err := next(ctx, conn)
		duration := time.Since(start)

		h.metrics.ConversationDuration.WithLabelValues(string(flow)).Observe(duration.Seconds())

		event := log.Info()
		if err != nil {
			event = log.Warn().Err(err)
		}
		event.Dur("duration", duration).Msg("conversation finished")

		return err
	}
}

// withRecover turns a panic into an error naming the flow found in ctx.
func (h *Handlers) withRecover(next Conversation) Conversation {
	return func(ctx context.Context, conn channel.PeerConn) (err error) {
		defer func() {
			if p := recover(); p != nil {
				flow, ok := utils.GetFlowFromContext(ctx)
				if !ok {
					flow = "unknown"
				}
				logger.FromContext(ctx).Error().
					Str("func", "Handlers.withRecover").
					Str("panic_flow", flow).
					Any("panic", p).
					Msg("conversation panicked")
				err = fmt.Errorf("%w: %s: %v", errPanic, flow, p)
			}
		}()

		return next(ctx, conn)
	}
}

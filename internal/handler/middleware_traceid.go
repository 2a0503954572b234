package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/models"
)

// withTraceID gives every conversation its own trace id and puts the peer
// identity into ctx.
func (h *Handlers) withTraceID(flow models.Flow, next Conversation) Conversation {
	return func(ctx context.Context, conn channel.PeerConn) error {
		traceID := uuid.NewString()
		peerID := conn.PeerID()

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.
				Str("trace_id", traceID).
				Str("flow", string(flow)).
				Str("peer_id", peerID).
				Str("remote_addr", conn.RemoteAddr())
		})

		ctx = l.WithContext(ctx)
		ctx = utils.WithPeerID(ctx, peerID)
		ctx = utils.WithFlow(ctx, string(flow))

		return next(ctx, conn)
	}
}

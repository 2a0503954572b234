package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/models"
)

// push stores records until the one flagged last. Each record is answered
// with its ack before the next one is read, so acks go out in send order.
// A client that gives up mid-batch closes the stream; that is not an error.
func (h *Handlers) push(ctx context.Context, conn channel.PeerConn) error {
	log := logger.FromContext(ctx)
	peerID, _ := utils.GetPeerIDFromContext(ctx)

	var received int
	for {
		var item models.RecordBatchItem
		err := conn.ReceiveObject(ctx, &item)
		if errors.Is(err, channel.ErrPeerClosed) {
			log.Info().Int("received", received).Msg("client closed the batch early")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error receiving record: %w", err)
		}
		received++

		ack := h.services.RecordService.Accept(ctx, peerID, item)
		h.metrics.RecordsAccepted.WithLabelValues(metrics.Result(!ack.Failed)).Inc()

		if err = conn.SendObject(ctx, ack); err != nil {
			return fmt.Errorf("error sending ack for record %d: %w", item.Record.LocalID, err)
		}

		if item.Last {
			log.Info().Int("received", received).Msg("batch complete")
			return nil
		}
	}
}

package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/models"
)

// sync runs request, response and ack. A failed response ends the
// conversation; the client sends no ack for it.
func (h *Handlers) sync(ctx context.Context, conn channel.PeerConn) (err error) {
	log := logger.FromContext(ctx)
	peerID, _ := utils.GetPeerIDFromContext(ctx)

	result := metrics.ResultFailed
	defer func() {
		h.metrics.SyncRounds.WithLabelValues(result).Inc()
	}()

	var req models.SyncRequest
	if err = conn.ReceiveObject(ctx, &req); err != nil {
		return fmt.Errorf("error receiving sync request: %w", err)
	}

	resp, beginErr := h.services.SyncService.Begin(ctx, peerID, req)
	if beginErr != nil {
		log.Warn().Err(beginErr).Str("client_id", req.ClientID).Msg("sync request rejected")
	}

	if err = conn.SendObject(ctx, resp); err != nil {
		return fmt.Errorf("error sending sync response: %w", err)
	}
	if resp.Failed {
		result = metrics.ResultRejected
		return nil
	}
	h.metrics.EntriesServed.Add(float64(len(resp.Entries)))

	var ack models.SyncAck
	if err = conn.ReceiveObject(ctx, &ack); err != nil {
		return fmt.Errorf("error receiving sync ack: %w", err)
	}
	if err = h.services.SyncService.Acknowledge(ctx, peerID, ack); err != nil {
		return fmt.Errorf("error storing sync ack: %w", err)
	}

	log.Info().
		Int("entries", len(resp.Entries)).
		Any("ack_watermark", ack.Watermark).
		Msg("sync round acknowledged")
	result = metrics.ResultOK
	return nil
}

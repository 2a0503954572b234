package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/models"
)

func (h *Handlers) query(ctx context.Context, conn channel.PeerConn) error {
	peerID, _ := utils.GetPeerIDFromContext(ctx)

	var req models.QueryRequest
	if err := conn.ReceiveObject(ctx, &req); err != nil {
		return fmt.Errorf("error receiving query: %w", err)
	}

	resp := h.services.QueryService.Answer(ctx, peerID, req)
	h.metrics.Queries.WithLabelValues(kindLabel(req.Kind), metrics.Result(!resp.Failed)).Inc()

	if err := conn.SendObject(ctx, resp); err != nil {
		return fmt.Errorf("error sending query response: %w", err)
	}
	return nil
}

// kindLabel bounds the label values to the known kinds.
func kindLabel(kind string) string {
	switch kind {
	case models.QueryKindRecord, models.QueryKindClientStatus:
		return kind
	default:
		return "other"
	}
}

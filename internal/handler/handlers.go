// Package handler implements the server side of each flow's conversation
// over an established secure channel.
package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/service"
	"github.com/MKhiriev/go-epr-sync/models"
)

// Conversation runs one flow exchange on a handshaken connection. The caller
// owns conn and closes it afterwards.
type Conversation func(ctx context.Context, conn channel.PeerConn) error

type Handlers struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandlers(services *service.Services, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if m == nil {
		m = metrics.New()
	}

	return &Handlers{
		services: services,
		metrics:  m,
		logger:   logger,
	}, nil
}

// For returns the conversation of flow with trace id, logging and panic
// recovery applied.
func (h *Handlers) For(flow models.Flow) (Conversation, error) {
	var conv Conversation
	switch flow {
	case models.FlowPush:
		conv = h.push
	case models.FlowSync:
		conv = h.sync
	case models.FlowQuery:
		conv = h.query
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}

	return h.withTraceID(flow, h.withLogging(flow, h.withRecover(conv))), nil
}

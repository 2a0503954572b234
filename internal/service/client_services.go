package service

import (
	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/models"
)

type ClientServices struct {
	PushService  ClientPushService
	SyncService  ClientSyncService
	QueryService ClientQueryService
}

func NewClientServices(
	storages *store.ClientStorages,
	dialer channel.Dialer,
	provider identity.Provider,
	cfg config.ClientAdapter,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		PushService:  NewClientPushService(storages.Records, dialer, provider, cfg.PushRounds, cfg.RoundDelay, cfg.AckTimeout, logger),
		SyncService:  NewClientSyncService(storages.Sync, dialer, provider, logger),
		QueryService: NewClientQueryService(dialer, provider, cfg.RetryDelay, logger),
	}
}

// notify delivers a status update when a callback is set.
func notify(onStatus models.StatusFunc, flow models.Flow, state models.FlowState, message string) {
	if onStatus == nil {
		return
	}
	onStatus(models.FlowStatus{Flow: flow, State: state, Message: message})
}

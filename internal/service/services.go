package service

import (
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/store"
)

type Services struct {
	RecordService RecordService
	SyncService   SyncService
	QueryService  QueryService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		RecordService: NewRecordValidationService().Wrap(NewRecordService(storages.Records, logger)),
		SyncService:   NewSyncValidationService().Wrap(NewSyncService(storages.Clients, storages.Log, storages.Accounts, logger)),
		QueryService:  NewQueryService(storages.Records, storages.Clients, logger),
	}
}

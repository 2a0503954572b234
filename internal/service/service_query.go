package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/internal/validators"
	"github.com/MKhiriev/go-epr-sync/models"
)

// ParamServerID is the query parameter of the record kind.
const ParamServerID = "server_id"

type queryService struct {
	records   store.RecordRepository
	clients   store.ClientRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewQueryService(records store.RecordRepository, clients store.ClientRepository, logger *logger.Logger) QueryService {
	return &queryService{
		records:   records,
		clients:   clients,
		validator: validators.NewMessageValidator(),
		logger:    logger,
	}
}

// Answer implements QueryService. Both kinds are scoped to the requesting
// client: a record transmitted by another vehicle is reported as not found.
func (s *queryService) Answer(ctx context.Context, clientID string, req models.QueryRequest) models.QueryResponse {
	var (
		resp models.QueryResponse
		err  error
	)
	switch {
	case s.validator.Validate(ctx, req) != nil:
		resp, err = failedQuery(app.MsgInvalidQuery), fmt.Errorf("%w: empty kind", ErrInvalidQuery)
	case req.Kind == models.QueryKindRecord:
		resp, err = s.record(ctx, clientID, req.Params)
	case req.Kind == models.QueryKindClientStatus:
		resp, err = s.clientStatus(ctx, clientID)
	default:
		resp, err = failedQuery(app.MsgUnknownQuery), fmt.Errorf("%w: kind %q", ErrInvalidQuery, req.Kind)
	}

	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "queryService.Answer").
			Str("client_id", clientID).
			Str("kind", req.Kind).
			Msg("query not answered")
	}
	return resp
}

func (s *queryService) record(ctx context.Context, clientID string, params map[string]string) (models.QueryResponse, error) {
	serverID, err := strconv.ParseInt(params[ParamServerID], 10, 64)
	if err != nil || serverID <= 0 {
		return failedQuery(app.MsgInvalidQuery), fmt.Errorf("%w: %s=%q", ErrInvalidQuery, ParamServerID, params[ParamServerID])
	}

	record, err := s.records.GetRecord(ctx, clientID, serverID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return failedQuery(app.MsgRecordNotFound), err
	}
	if err != nil {
		return failedQuery(app.MsgInternalServerError), err
	}

	return models.QueryResponse{Record: &record, Message: app.MsgResponseReceived}, nil
}

func (s *queryService) clientStatus(ctx context.Context, clientID string) (models.QueryResponse, error) {
	state, err := s.clients.GetClientState(ctx, clientID)
	if errors.Is(err, store.ErrUnknownClient) {
		return failedQuery(app.MsgUnknownClient), err
	}
	if err != nil {
		return failedQuery(app.MsgInternalServerError), err
	}

	return models.QueryResponse{ClientState: &state, Message: app.MsgResponseReceived}, nil
}

func failedQuery(message string) models.QueryResponse {
	return models.QueryResponse{Message: message, Failed: true}
}

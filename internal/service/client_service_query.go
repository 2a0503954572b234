package service

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/models"
)

type clientQueryService struct {
	dialer     channel.Dialer
	provider   identity.Provider
	retryDelay time.Duration
	logger     *logger.Logger
}

func NewClientQueryService(dialer channel.Dialer, provider identity.Provider, retryDelay time.Duration, logger *logger.Logger) ClientQueryService {
	return &clientQueryService{
		dialer:     dialer,
		provider:   provider,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// Query implements ClientQueryService. Connect and send are retried with a
// fixed delay for as long as ctx allows; certificate and protocol failures
// end the exchange at once. Cancelling ctx closes the channel, which unblocks
// the pending read.
func (s *clientQueryService) Query(ctx context.Context, req models.QueryRequest, onStatus models.StatusFunc) (models.QueryResponse, error) {
	log := s.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	fail := func(err error) (models.QueryResponse, error) {
		state := models.StateFailed
		if ctx.Err() != nil {
			state = models.StateCancelled
		}
		log.Error().Err(err).Str("func", "clientQueryService.Query").Str("kind", req.Kind).Msg("query failed")
		notify(onStatus, models.FlowQuery, state, failureMessage(err))
		return models.QueryResponse{}, err
	}

	var (
		conn    channel.Conn
		attempt int
	)
	err := retry.Do(ctx, retry.NewConstant(s.retryDelay), func(ctx context.Context) error {
		attempt++

		notify(onStatus, models.FlowQuery, models.StateConnecting, app.MsgConnecting)
		c, err := s.dialer.Open(ctx, s.provider.Host(), s.provider.Port(models.FlowQuery))
		if err != nil {
			return s.retryable(ctx, attempt, mapChannelError(ctx, err))
		}

		notify(onStatus, models.FlowQuery, models.StateSending, app.MsgSendingQuery)
		if err = c.SendObject(ctx, req); err != nil {
			_ = c.Close()
			return s.retryable(ctx, attempt, mapChannelError(ctx, err))
		}

		conn = c
		return nil
	})
	if err != nil {
		return fail(mapChannelError(ctx, err))
	}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	notify(onStatus, models.FlowQuery, models.StateAwaitingResponse, app.MsgAwaitingResponse)
	var resp models.QueryResponse
	if err = conn.ReceiveObject(ctx, &resp); err != nil {
		return fail(mapChannelError(ctx, err))
	}
	if resp.Failed {
		return fail(newRejectionError(resp.Message))
	}

	notify(onStatus, models.FlowQuery, models.StateDone, app.MsgResponseReceived)
	return resp, nil
}

func (s *clientQueryService) retryable(ctx context.Context, attempt int, err error) error {
	if !retryableChannelError(err) {
		return err
	}
	logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("query attempt failed, retrying")
	return retry.RetryableError(err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/models"
)

// errRoundIncomplete ends a round that left records unsent.
var errRoundIncomplete = errors.New("round incomplete")

type clientPushService struct {
	records  store.LocalRecordRepository
	dialer   channel.Dialer
	provider identity.Provider
	logger   *logger.Logger

	rounds     int
	roundDelay time.Duration
	ackTimeout time.Duration
}

// NewClientPushService builds the push pipeline. rounds bounds the number of
// transmission rounds; roundDelay separates them.
func NewClientPushService(
	records store.LocalRecordRepository,
	dialer channel.Dialer,
	provider identity.Provider,
	rounds int,
	roundDelay, ackTimeout time.Duration,
	logger *logger.Logger,
) ClientPushService {
	if rounds < 1 {
		rounds = 1
	}
	return &clientPushService{
		records:    records,
		dialer:     dialer,
		provider:   provider,
		logger:     logger,
		rounds:     rounds,
		roundDelay: roundDelay,
		ackTimeout: ackTimeout,
	}
}

// Push implements ClientPushService.
//
// The queue is read once. Each round opens one channel and sends the
// remaining records in order; a record leaves the remaining list as soon as
// its bytes are written. A record the codec cannot encode stays for the next
// round while the others are sent. Only a transport failure ends a round
// early, and the broken channel is discarded with it. Acks are read by a
// second goroutine on the same channel and correlated in send order; only an
// ack deletes a record.
func (s *clientPushService) Push(ctx context.Context, onStatus models.StatusFunc, onAck models.AckFunc) (PushResult, error) {
	log := s.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	pending, err := s.records.ListPendingRecords(ctx)
	if err != nil {
		err = mapStoreError(err)
		notify(onStatus, models.FlowPush, models.StateFailed, failureMessage(err))
		return PushResult{}, err
	}

	res := PushResult{Total: len(pending)}
	if len(pending) == 0 {
		notify(onStatus, models.FlowPush, models.StateDone, app.MsgNoPendingRecords)
		return res, nil
	}

	remaining := make([]models.RecordBatchItem, len(pending))
	for i, record := range pending {
		remaining[i] = models.RecordBatchItem{Record: record, Last: i == len(pending)-1}
	}

	backoff := retry.WithMaxRetries(uint64(s.rounds-1), retry.NewConstant(s.roundDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var roundErr error
		res.Rounds++
		remaining, roundErr = s.round(ctx, remaining, &res, onStatus, onAck)
		switch {
		case roundErr != nil && !retryableChannelError(roundErr):
			return roundErr
		case len(remaining) == 0:
			if roundErr != nil {
				// every record was written; unacked ones stay pending
				log.Warn().Err(roundErr).Msg("acks missing after complete batch")
			}
			return nil
		case roundErr != nil:
			log.Warn().Err(roundErr).Int("round", res.Rounds).Int("remaining", len(remaining)).Msg("push round failed")
			return retry.RetryableError(roundErr)
		default:
			return retry.RetryableError(errRoundIncomplete)
		}
	})

	switch {
	case err == nil:
		notify(onStatus, models.FlowPush, models.StateDone, fmt.Sprintf(app.MsgRecordsTransmitted, res.Acked, res.Total))
		return res, nil
	case ctx.Err() != nil:
		err = fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		notify(onStatus, models.FlowPush, models.StateCancelled, app.MsgCancelled)
		return res, err
	case retryableChannelError(err) || errors.Is(err, errRoundIncomplete):
		log.Error().Err(err).Int("rounds", res.Rounds).Msg("push batch incomplete")
		notify(onStatus, models.FlowPush, models.StateFailed, fmt.Sprintf(app.MsgTransmissionFailed, res.Rounds))
		return res, fmt.Errorf("%w: %d records unsent after %d rounds: %w", ErrBoundedAttempts, len(remaining), res.Rounds, err)
	default:
		log.Error().Err(err).Int("rounds", res.Rounds).Msg("push failed")
		notify(onStatus, models.FlowPush, models.StateFailed, failureMessage(err))
		return res, err
	}
}

// round performs one connect and send pass and returns the records still
// unsent.
func (s *clientPushService) round(
	ctx context.Context,
	remaining []models.RecordBatchItem,
	res *PushResult,
	onStatus models.StatusFunc,
	onAck models.AckFunc,
) ([]models.RecordBatchItem, error) {
	log := logger.FromContext(ctx)

	notify(onStatus, models.FlowPush, models.StateConnecting, app.MsgConnecting)
	conn, err := s.dialer.Open(ctx, s.provider.Host(), s.provider.Port(models.FlowPush))
	if err != nil {
		return remaining, mapChannelError(ctx, err)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	notify(onStatus, models.FlowPush, models.StateSending, app.MsgSendingRecords)

	g, gctx := errgroup.WithContext(ctx)
	sent := make(chan int64, len(remaining))
	rest := remaining
	var (
		unencodable []models.RecordBatchItem
		sendErr     error
	)

	// sender: exclusively writes
	g.Go(func() error {
		defer close(sent)
		for len(rest) > 0 {
			err := conn.SendObject(gctx, rest[0])
			if isEncodeError(err) {
				// nothing was written, the channel is still usable
				log.Warn().Err(err).Int64("local_id", rest[0].Record.LocalID).Msg("record could not be encoded, kept for the next round")
				unencodable = append(unencodable, rest[0])
				rest = rest[1:]
				continue
			}
			if err != nil {
				sendErr = err
				return nil
			}
			res.Sent++
			sent <- rest[0].Record.LocalID
			rest = rest[1:]
		}
		return nil
	})

	// ack listener: exclusively reads
	g.Go(func() error {
		for localID := range sent {
			ack, err := s.receiveAck(gctx, conn, localID)
			if err != nil {
				return err
			}
			if ack.Failed {
				res.Rejected++
				log.Warn().Int64("local_id", localID).Str("message", ack.Message).Msg("server rejected record")
				continue
			}
			if err = s.records.DeleteRecord(gctx, localID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
				return mapStoreError(err)
			}
			res.Acked++
			if onAck != nil {
				onAck(ack)
			}
		}
		return nil
	})

	err = g.Wait()
	rest = append(unencodable, rest...)
	if err != nil {
		return rest, mapChannelError(ctx, err)
	}
	if sendErr != nil {
		return rest, mapChannelError(ctx, sendErr)
	}
	return rest, nil
}

// isEncodeError reports a record the codec refused before writing any byte.
func isEncodeError(err error) bool {
	return errors.Is(err, protocol.ErrFrameTooLarge) || errors.Is(err, protocol.ErrMalformedFrame)
}

func (s *clientPushService) receiveAck(ctx context.Context, conn channel.Conn, localID int64) (models.RecordAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.ackTimeout)
	defer cancel()

	var ack models.RecordAck
	if err := conn.ReceiveObject(ctx, &ack); err != nil {
		return models.RecordAck{}, err
	}
	if ack.LocalID != localID {
		return models.RecordAck{}, fmt.Errorf("%w: ack for record %d, expected %d", protocol.ErrUnexpectedMessage, ack.LocalID, localID)
	}
	return ack, nil
}

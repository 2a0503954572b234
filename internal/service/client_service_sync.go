package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/models"
)

type clientSyncService struct {
	syncStore store.LocalSyncRepository
	dialer    channel.Dialer
	provider  identity.Provider
	logger    *logger.Logger
	now       func() time.Time
}

func NewClientSyncService(syncStore store.LocalSyncRepository, dialer channel.Dialer, provider identity.Provider, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		syncStore: syncStore,
		dialer:    dialer,
		provider:  provider,
		logger:    logger,
		now:       time.Now,
	}
}

// Sync implements ClientSyncService.
//
// Blocked logins travel with the request and are cleared only once the server
// answered with a non-failed response; ids that cannot be sent are cleared
// with them. Log entries are applied in the order received; a duplicate
// counts as applied, any other failure stops the apply phase but keeps what
// was already committed. The ack is always sent after a non-failed response
// and the local state is written last.
//
// A round that fails after the local state was read still records its
// message, and the contact time when the server answered, but never moves the
// watermark.
func (s *clientSyncService) Sync(ctx context.Context, onStatus models.StatusFunc) (SyncResult, error) {
	log := s.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	report := func(err error) (SyncResult, error) {
		state := models.StateFailed
		if errors.Is(err, ErrCancelled) {
			state = models.StateCancelled
		}
		log.Error().Err(err).Str("func", "clientSyncService.Sync").Msg("sync round failed")
		notify(onStatus, models.FlowSync, state, failureMessage(err))
		return SyncResult{}, err
	}

	// request construction happens before any network I/O
	state, err := s.syncStore.GetSyncState(ctx, s.provider.ClientID())
	if err != nil {
		return report(mapStoreError(err))
	}

	contacted := false
	fail := func(err error) (SyncResult, error) {
		s.recordFailure(ctx, state, failureMessage(err), contacted)
		return report(err)
	}

	blocked, err := s.syncStore.ListBlockedLogins(ctx)
	if err != nil {
		return fail(mapStoreError(err))
	}
	blockedIDs, invalidIDs := splitBlockedLogins(blocked)
	if len(invalidIDs) > 0 {
		log.Warn().Int("count", len(invalidIDs)).Msg("blocked logins without a usable user id are not reported")
	}
	req := models.SyncRequest{
		ClientID:       s.provider.ClientID(),
		Watermark:      state.Watermark,
		BlockedUserIDs: blockedIDs,
	}

	notify(onStatus, models.FlowSync, models.StateConnecting, app.MsgConnecting)
	conn, err := s.dialer.Open(ctx, s.provider.Host(), s.provider.Port(models.FlowSync))
	if err != nil {
		return fail(mapChannelError(ctx, err))
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	notify(onStatus, models.FlowSync, models.StateSendingRequest, app.MsgSendingSyncRequest)
	if err = conn.SendObject(ctx, req); err != nil {
		return fail(mapChannelError(ctx, err))
	}
	log.Info().
		Bool("bootstrap", req.Bootstrap()).
		Int("blocked_users", len(req.BlockedUserIDs)).
		Msg("sync request sent")

	notify(onStatus, models.FlowSync, models.StateAwaitingLog, app.MsgAwaitingUpdates)
	var resp models.SyncResponse
	if err = conn.ReceiveObject(ctx, &resp); err != nil {
		return fail(mapChannelError(ctx, err))
	}
	contacted = true
	if resp.Failed {
		return fail(newRejectionError(resp.Message))
	}
	if resp.Message != "" {
		log.Info().Str("notices", resp.Message).Msg("server notices")
	}

	if cleared := slices.Concat(blockedIDs, invalidIDs); len(cleared) > 0 {
		if err = s.syncStore.ClearBlockedLogins(ctx, cleared); err != nil {
			// they will be reported again; the server answers "already disabled"
			log.Warn().Err(err).Msg("failed to clear blocked logins")
		}
	}

	notify(onStatus, models.FlowSync, models.StateApplying, fmt.Sprintf(app.MsgApplyingUpdates, len(resp.Entries)))
	applied, watermark, applyErr := s.apply(ctx, resp.Entries)

	result := SyncResult{
		Received:  len(resp.Entries),
		Applied:   applied,
		Watermark: state.Watermark,
		Message:   fmt.Sprintf(app.MsgUpdatesApplied, applied, len(resp.Entries)),
	}

	notify(onStatus, models.FlowSync, models.StateSendingAck, app.MsgConfirmingUpdates)
	if err = conn.SendObject(ctx, models.SyncAck{Watermark: watermark, Message: result.Message}); err != nil {
		return fail(mapChannelError(ctx, err))
	}

	next := state
	next.ClientID = s.provider.ClientID()
	if watermark != nil && (next.Watermark == nil || *watermark > *next.Watermark) {
		next.Watermark = watermark
	}
	next.LastContact = s.now()
	next.Message = result.Message
	if err = s.syncStore.SaveSyncState(ctx, next); err != nil {
		return report(mapStoreError(err))
	}
	result.Watermark = next.Watermark

	if applyErr != nil {
		log.Error().Err(applyErr).Int("applied", applied).Int("received", result.Received).Msg("apply stopped")
		notify(onStatus, models.FlowSync, models.StateFailed, result.Message)
		return result, applyErr
	}

	log.Info().Int("applied", applied).Int("received", result.Received).Msg("sync round done")
	notify(onStatus, models.FlowSync, models.StateDone, result.Message)
	return result, nil
}

// apply runs entries in order and returns how many were applied and the
// timestamp of the last applied one (nil when none was).
func (s *clientSyncService) apply(ctx context.Context, entries []models.MutationLogEntry) (int, *int64, error) {
	log := logger.FromContext(ctx)

	var (
		applied   int
		watermark *int64
	)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return applied, watermark, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		err := mapStoreError(s.syncStore.ApplyStatement(ctx, entry.Statement))
		switch {
		case err == nil:
		case errors.Is(err, ErrApplyDuplicate):
			log.Debug().Int64("ts", entry.Timestamp).Msg("entry already applied")
		default:
			return applied, watermark, fmt.Errorf("%w: entry %d: %w", ErrApply, entry.Timestamp, err)
		}

		applied++
		ts := entry.Timestamp
		watermark = &ts
	}
	return applied, watermark, nil
}

// recordFailure keeps the failure visible in the local state, also after a
// cancel. Errors are logged only; the round already failed.
func (s *clientSyncService) recordFailure(ctx context.Context, state models.ClientSyncState, message string, contacted bool) {
	ctx = context.WithoutCancel(ctx)

	next := state
	next.ClientID = s.provider.ClientID()
	next.Message = message
	if contacted {
		next.LastContact = s.now()
	}
	if err := s.syncStore.SaveSyncState(ctx, next); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to record sync failure")
	}
}

// splitBlockedLogins returns the distinct user ids to report and the ids that
// cannot be reported (blank).
func splitBlockedLogins(entries []models.BlockedLoginEntry) (valid, invalid []string) {
	valid = make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.UserID) == "" {
			invalid = append(invalid, entry.UserID)
			continue
		}
		if _, dup := seen[entry.UserID]; dup {
			continue
		}
		seen[entry.UserID] = struct{}{}
		valid = append(valid, entry.UserID)
	}
	return valid, invalid
}

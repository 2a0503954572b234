package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/models"
)

// syncService is the server half of the update sync. It owns no state of its
// own; progress lives in ambulance_last_update and the log in the store.
type syncService struct {
	clients  store.ClientRepository
	log      store.MutationLogRepository
	accounts store.AccountRepository
	logger   *logger.Logger
}

func NewSyncService(
	clients store.ClientRepository,
	log store.MutationLogRepository,
	accounts store.AccountRepository,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		clients:  clients,
		log:      log,
		accounts: accounts,
		logger:   logger,
	}
}

// Begin implements SyncService.
//
// Steps:
//  1. The request must come from the certificate of the client it names.
//  2. The client must have a progress row; otherwise "unknown client".
//  3. Each blocked user is disabled with exactly one log entry, or reported
//     as already disabled. Blank ids are reported and skipped. Notices are
//     joined into the response message.
//  4. Entries are selected: the whole log for a bootstrap, entries after the
//     watermark otherwise.
//  5. The served position is recorded unless the request is a resend, in
//     which case nothing advances until the client acknowledges again.
func (s *syncService) Begin(ctx context.Context, peerID string, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if req.ClientID != peerID {
		return rejected(app.MsgClientMismatch), fmt.Errorf("%w: request for %q from %q", ErrClientMismatch, req.ClientID, peerID)
	}

	state, err := s.clients.GetClientState(ctx, req.ClientID)
	if errors.Is(err, store.ErrUnknownClient) {
		return rejected(app.MsgUnknownClient), err
	}
	if err != nil {
		return rejected(app.MsgInternalServerError), err
	}

	resend := isResend(req.Watermark, state.AckedWatermark)
	if resend {
		log.Warn().
			Str("client_id", req.ClientID).
			Any("request_watermark", req.Watermark).
			Any("acked_watermark", state.AckedWatermark).
			Msg("sync request behind acknowledged position, treating as resend")
	}

	notices, err := s.disableBlockedUsers(ctx, req.BlockedUserIDs)
	if err != nil {
		return rejected(app.MsgInternalServerError), err
	}
	message := strings.Join(notices, "; ")

	entries, err := s.log.Select(ctx, req.Watermark)
	if err != nil {
		return rejected(app.MsgInternalServerError), err
	}

	if !resend {
		var served *int64
		if len(entries) > 0 {
			served = &entries[len(entries)-1].Timestamp
		}
		if err = s.clients.MarkServed(ctx, req.ClientID, served, message); err != nil {
			return rejected(app.MsgInternalServerError), err
		}
	}

	log.Info().
		Str("client_id", req.ClientID).
		Bool("bootstrap", req.Bootstrap()).
		Bool("resend", resend).
		Int("entries", len(entries)).
		Msg("sync response prepared")

	return models.SyncResponse{Entries: entries, Message: message}, nil
}

// disableBlockedUsers returns one notice per user. A blank id or a missing
// account is reported, not fatal, and a repeated id is handled once. Any other
// store failure aborts the round so the client keeps its blocked logins.
func (s *syncService) disableBlockedUsers(ctx context.Context, userIDs []string) ([]string, error) {
	notices := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if strings.TrimSpace(userID) == "" {
			notices = append(notices, app.MsgUserIDBlank)
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		alreadyDisabled, err := s.accounts.DisableUser(ctx, userID)
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			notices = append(notices, fmt.Sprintf(app.MsgUserNotFound, userID))
		case err != nil:
			return nil, fmt.Errorf("disable user %s: %w", userID, err)
		case alreadyDisabled:
			notices = append(notices, fmt.Sprintf(app.MsgUserAlreadyDisabled, userID))
		default:
			notices = append(notices, fmt.Sprintf(app.MsgUserDisabled, userID))
		}
	}
	return notices, nil
}

// Acknowledge implements SyncService.
func (s *syncService) Acknowledge(ctx context.Context, clientID string, ack models.SyncAck) error {
	if err := s.clients.StoreAck(ctx, clientID, ack.Watermark, ack.Message); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.Acknowledge").
			Str("client_id", clientID).
			Msg("error storing ack")
		return err
	}
	return nil
}

// Provision implements SyncService.
func (s *syncService) Provision(ctx context.Context, clientIDs []string) error {
	for _, id := range clientIDs {
		if id == "" {
			continue
		}
		if err := s.clients.EnsureClient(ctx, id); err != nil {
			return fmt.Errorf("provision client %s: %w", id, err)
		}
	}
	return nil
}

// isResend reports a request behind the acknowledged position: the client
// never stored the ack of an earlier round.
func isResend(requested, acked *int64) bool {
	if acked == nil {
		return false
	}
	return requested == nil || *requested < *acked
}

func rejected(message string) models.SyncResponse {
	return models.SyncResponse{
		Entries: []models.MutationLogEntry{},
		Message: message,
		Failed:  true,
	}
}
